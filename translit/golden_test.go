package translit

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase represents a single golden test case for transliteration.
type goldenCase struct {
	Name      string `json:"name"`
	Input     string `json:"input"`
	Direction string `json:"direction"` // arabic_to_latin, latin_to_arabic, auto
	Want      string `json:"want"`
}

const goldenPath = "../data/golden/translit.json"

func runGoldenCase(tc goldenCase) string {
	switch tc.Direction {
	case "arabic_to_latin":
		return ArabicToLatin(tc.Input)
	case "latin_to_arabic":
		return LatinToArabic(tc.Input)
	case "auto":
		return Auto(tc.Input, nil)
	}
	return ""
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("translit.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if got := runGoldenCase(tc); got != tc.Want {
				t.Errorf("%s(%q) = %q, want %q", tc.Direction, tc.Input, got, tc.Want)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		cases[i].Want = runGoldenCase(cases[i])
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}

	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/translit.json")
}
