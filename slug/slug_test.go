package slug

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"uyghur title", "نوزۇگۇم داستانى", "nozugum-dastani"},
		{"english title", "The Story of Nozugum", "the-story-of-nozugum"},
		{"uyghur with umlauts romanized", "ئۈرۈمچى", "urumchi"},
		{"accented latin", "café résumé", "cafe-resume"},
		{"punctuation dropped", "hello, world!", "hello-world"},
		{"digits kept", "chapter 12", "chapter-12"},
		{"arabic indic digits via translit", "٢٠٢٤-يىل", "2024-yil"},
		{"multiple spaces", "a   b", "a-b"},
		{"leading trailing junk", "  --hello--  ", "hello"},
		{"emoji dropped", "party 🎉 time", "party-time"},
		{"mixed script romanized", "uyghur ئۇيغۇرچە text", "uyghur-uyghurche-text"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Generate(tt.in, nil); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom separator", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Separator = "_"
		if got := Generate("hello world", &opts); got != "hello_world" {
			t.Errorf("got %q, want %q", got, "hello_world")
		}
	})

	t.Run("lowercase disabled", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Lowercase = false
		if got := Generate("Hello World", &opts); got != "Hello-World" {
			t.Errorf("got %q, want %q", got, "Hello-World")
		}
	})

	t.Run("trim disabled keeps edge separators", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Trim = false
		if got := Generate("!hello!", &opts); got != "hello" {
			// No whitespace at the edges, so nothing to keep: the bangs
			// are deleted, not converted.
			t.Errorf("got %q, want %q", got, "hello")
		}
		if got := Generate(" hello ", &opts); got != "hello" {
			// Outer whitespace is trimmed before separator replacement.
			t.Errorf("got %q, want %q", got, "hello")
		}
	})

	t.Run("zero value fields mean defaults", func(t *testing.T) {
		t.Parallel()
		opts := Options{Lowercase: true, Trim: true}
		if got := Generate("hello world", &opts); got != "hello-world" {
			t.Errorf("got %q, want %q", got, "hello-world")
		}
	})

	t.Run("negative MaxLength panics", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if recover() == nil {
				t.Error("want panic for negative MaxLength")
			}
		}()
		opts := Options{MaxLength: -1}
		Generate("hello", &opts)
	})
}

func TestGenerateTruncation(t *testing.T) {
	t.Parallel()

	t.Run("hard cut when no nearby boundary", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.MaxLength = 10
		// One long token: no separator in the truncated prefix at all.
		if got := Generate("abcdefghijklmnop", &opts); got != "abcdefghij" {
			t.Errorf("got %q, want %q", got, "abcdefghij")
		}
	})

	t.Run("backs up to separator in tail 30 percent", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.MaxLength = 10
		// "singapore-airlines" truncated to 10 is "singapore-"; the last
		// separator sits at position 9 >= 7, so the cut backs up to it.
		if got := Generate("singapore airlines", &opts); got != "singapore" {
			t.Errorf("got %q, want %q", got, "singapore")
		}
	})

	t.Run("keeps hard cut when boundary too early", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.MaxLength = 10
		// "ab-cdefghijklmn" truncated to 10 is "ab-cdefghi"; the separator
		// at position 2 < 7 is too early, so the hard cut stands.
		if got := Generate("ab cdefghijklmn", &opts); got != "ab-cdefghi" {
			t.Errorf("got %q, want %q", got, "ab-cdefghi")
		}
	})

	t.Run("length bound holds for all max lengths", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"the quick brown fox jumps over the lazy dog",
			"نوزۇگۇم داستانى ئۇيغۇر خەلق داستانلىرىنىڭ بىرى",
			"one",
		}
		for _, in := range inputs {
			for maxLen := 1; maxLen <= 30; maxLen++ {
				opts := DefaultOptions()
				opts.MaxLength = maxLen
				got := Generate(in, &opts)
				if n := utf8.RuneCountInString(got); n > maxLen {
					t.Errorf("Generate(%q, maxLen=%d) has length %d", in, maxLen, n)
				}
			}
		}
	})
}

func TestSlugifyAlias(t *testing.T) {
	t.Parallel()
	in := "The Story of Nozugum"
	if Slugify(in, nil) != Generate(in, nil) {
		t.Error("Slugify and Generate disagree")
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"single letter", "a", true},
		{"single digit", "7", true},
		{"alphanumeric", "test123", true},
		{"with separator", "hello-world", true},
		{"uppercase rejected", "Hello", false},
		{"space rejected", "hello world", false},
		{"leading separator", "-hello", false},
		{"trailing separator", "hello-", false},
		{"underscore with default separator", "hello_world", false},
		{"interior double separator tolerated", "a--b", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValid(tt.in, nil); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	t.Run("custom separator", func(t *testing.T) {
		t.Parallel()
		opts := Options{Separator: "_"}
		if !IsValid("hello_world", &opts) {
			t.Error("hello_world should be valid with _ separator")
		}
		if IsValid("hello-world", &opts) {
			t.Error("hello-world should be invalid with _ separator")
		}
	})
}

// TestGenerateProducesValidSlugs verifies the composition law: every
// non-empty Generate output passes IsValid under the same options.
func TestGenerateProducesValidSlugs(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"نوزۇگۇم داستانى",
		"The Story of Nozugum",
		"café résumé!",
		"٢٠٢٤-يىل ٥-ئاي",
		"--- odd --- input ---",
	}

	for _, in := range inputs {
		in := in
		t.Run("", func(t *testing.T) {
			t.Parallel()
			got := Generate(in, nil)
			if got == "" {
				t.Skip("empty slug")
			}
			if !IsValid(got, nil) {
				t.Errorf("Generate(%q) = %q is not a valid slug", in, got)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "hello-world", "hello-world"},
		{"uppercase folded", "Hello-World", "hello-world"},
		{"spaces to separator", "hello world", "hello-world"},
		{"junk removed", "he!!o wor#d", "heo-word"},
		{"separator runs collapsed", "a---b", "a-b"},
		{"edges trimmed", "-a-b-", "a-b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tt.in, nil); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestSanitizeSkipsTransliteration pins the difference from Generate:
// Sanitize never romanizes, so Arabic-script runes are simply dropped.
func TestSanitizeSkipsTransliteration(t *testing.T) {
	t.Parallel()
	in := "سالام-ok"
	if got := Sanitize(in, nil); got != "ok" {
		t.Errorf("Sanitize(%q) = %q, want %q", in, got, "ok")
	}
	if got := Generate(in, nil); got != "salam-ok" {
		t.Errorf("Generate(%q) = %q, want %q", in, got, "salam-ok")
	}
}

func BenchmarkGenerate(b *testing.B) {
	input := strings.Repeat("نوزۇگۇم داستانى ", 20)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(input, nil)
	}
}

func ExampleGenerate() {
	fmt.Println(Generate("نوزۇگۇم داستانى", nil))
	fmt.Println(Generate("The Story of Nozugum", nil))
	// Output:
	// nozugum-dastani
	// the-story-of-nozugum
}

func ExampleIsValid() {
	fmt.Println(IsValid("hello-world", nil))
	fmt.Println(IsValid("-hello", nil))
	// Output:
	// true
	// false
}
