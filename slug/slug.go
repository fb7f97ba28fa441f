// Package slug builds URL-safe identifiers from arbitrary-script input.
//
// Arabic-script input is romanized through the translit package before
// slugging; there is no Arabic-character slug mode. Latin input with accents
// (é, ü) is folded to plain ASCII by Unicode decomposition, so the output
// alphabet is always ASCII alphanumerics plus the configured separator.
//
// All functions are safe for concurrent use by multiple goroutines.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/azataiot/uyghur-utils/script"
	"github.com/azataiot/uyghur-utils/translit"
)

// DefaultMaxLength is the truncation bound applied when Options.MaxLength
// is zero.
const DefaultMaxLength = 100

// DefaultSeparator joins word boundaries when Options.Separator is empty.
const DefaultSeparator = "-"

// boundaryFraction is how deep into the truncated slug a separator must sit
// for truncation to back up to it instead of cutting a word mid-token.
const boundaryFraction = 0.7

// Options configures slug generation.
//
// The zero value of MaxLength and Separator means "use the default"; the
// boolean fields are taken literally, so callers overriding a single field
// should start from DefaultOptions. A negative MaxLength panics: that is a
// programming error, not an input error.
type Options struct {
	MaxLength int    // truncation bound in output characters; 0 means DefaultMaxLength
	Separator string // word-boundary join; "" means DefaultSeparator
	Lowercase bool   // fold output to lowercase
	Trim      bool   // strip leading/trailing separator runs
}

// DefaultOptions returns the configuration used when Generate receives nil:
// MaxLength 100, separator "-", lowercase and trim enabled.
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Separator: DefaultSeparator,
		Lowercase: true,
		Trim:      true,
	}
}

// resolve applies defaults and validates the configuration.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.MaxLength < 0 {
		panic(fmt.Sprintf("slug: negative MaxLength %d", o.MaxLength))
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	return o
}

// markStripper decomposes to NFD and removes combining marks, turning é
// into e. The Arabic path has already produced plain ASCII for mapped
// letters; this handles accented Latin input.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// whitespaceRe matches any whitespace run, ASCII or Unicode, for separator
// replacement.
var whitespaceRe = regexp.MustCompile(`[\s\p{Z}]+`)

// Generate builds a slug from text. Empty or all-whitespace input yields an
// empty slug, never an error. opts may be nil for defaults.
func Generate(text string, opts *Options) string {
	o := resolve(opts)

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// Arabic-script input is always romanized first.
	if script.ContainsArabic(text) {
		text = translit.ArabicToLatin(text)
	}

	if stripped, _, err := transform.String(markStripper, text); err == nil {
		text = stripped
	}

	return sanitize(text, o)
}

// Slugify is an alias of Generate.
func Slugify(text string, opts *Options) string {
	return Generate(text, opts)
}

// Sanitize runs the tail of the Generate pipeline — separator replacement,
// character filtering, collapsing, trimming, truncation — on an already-Latin
// string, without script detection or transliteration.
func Sanitize(slug string, opts *Options) string {
	o := resolve(opts)
	return sanitize(strings.TrimSpace(slug), o)
}

// sanitize applies the shared pipeline tail under resolved options.
func sanitize(s string, o Options) string {
	if o.Lowercase {
		s = strings.ToLower(s)
	}

	s = whitespaceRe.ReplaceAllString(s, o.Separator)
	s = dropDisallowed(s, o.Separator)
	s = collapseSeparator(s, o.Separator)

	if o.Trim {
		s = trimSeparator(s, o.Separator)
	}

	return truncate(s, o.Separator, o.MaxLength)
}

// dropDisallowed deletes every rune that is neither ASCII alphanumeric nor
// part of the separator. Both letter cases are allowed through; the
// lowercase step has already run when configured.
func dropDisallowed(s, sep string) string {
	allowed := map[rune]bool{}
	for _, r := range sep {
		allowed[r] = true
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIIAlnum(r) || allowed[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseSeparator reduces consecutive separator repeats to one occurrence.
func collapseSeparator(s, sep string) string {
	double := sep + sep
	for strings.Contains(s, double) {
		s = strings.ReplaceAll(s, double, sep)
	}
	return s
}

// trimSeparator strips leading and trailing separator runs.
func trimSeparator(s, sep string) string {
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}

// truncate cuts s to at most maxLen characters. When the hard cut leaves a
// separator at or after boundaryFraction of maxLen, the cut backs up to that
// separator (discarding it) so a word is not severed when a nearby boundary
// exists.
func truncate(s, sep string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	cut := string([]rune(s)[:maxLen])

	if idx := strings.LastIndex(cut, sep); idx >= 0 {
		pos := utf8.RuneCountInString(cut[:idx])
		if float64(pos) >= boundaryFraction*float64(maxLen) {
			return cut[:idx]
		}
	}

	return cut
}

// IsValid reports whether slug is a well-formed slug under the configured
// separator: non-empty, lowercase ASCII alphanumerics at both ends, and an
// interior of alphanumerics and separators only. opts may be nil; only the
// Separator field is consulted.
func IsValid(slug string, opts *Options) bool {
	sep := DefaultSeparator
	if opts != nil && opts.Separator != "" {
		sep = opts.Separator
	}

	if slug == "" {
		return false
	}
	if !isLowerAlnum(rune(slug[0])) || !isLowerAlnum(rune(slug[len(slug)-1])) {
		return false
	}

	interior := slug
	if sep != "" {
		interior = strings.ReplaceAll(slug, sep, "")
	}
	for _, r := range interior {
		if !isLowerAlnum(r) {
			return false
		}
	}
	return true
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isLowerAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
