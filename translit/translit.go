// Package translit converts Uyghur text between Arabic script and ULY.
//
// ULY (Uyghur Latin Yéziqi) is the official Latin romanization of Uyghur.
// Five ULY digraphs (ch, zh, sh, gh, ng) each correspond to a single Arabic
// letter, so Latin→Arabic conversion matches digraphs before single letters.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known lossy conversions (Arabic → Latin):
//   - Loanword letters collapse many-to-one: ح and ھ both become h,
//     ص/س/ث all become s, ط/ت both become t, ز/ظ/ذ/ض overlap on z and d.
//   - The hamza carrier ئ, standalone hamza ء, ayn ع, tatweel, and the
//     combining diacritics U+064B–U+0652 are removed without trace.
//   - LatinToArabic lowercases its input first; case is never preserved.
//
// Characters with no mapping (emoji, unrelated scripts) are silently dropped.
// ASCII letters, digits, and the punctuation set . , ! ? ; : ' " ( ) - pass
// through unchanged.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/azataiot/uyghur-utils/internal/uyrune"
)

// ArabicToLatin converts Uyghur Arabic-script text to ULY.
//
// Each rune is looked up in CompleteArabicLatin; mapped runes emit their
// Latin form (possibly multi-character or empty). Any run of whitespace
// collapses to a single ASCII space and the result is trimmed.
func ArabicToLatin(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if lat, ok := CompleteArabicLatin[r]; ok {
			b.WriteString(lat)
			continue
		}
		if unicode.IsSpace(r) {
			b.WriteByte(' ')
			continue
		}
		if isASCIIAlnum(r) || isPassthroughPunct(r) {
			b.WriteRune(r)
		}
		// Unmapped runes are dropped.
	}

	return uyrune.CollapseSpace(b.String())
}

// LatinToArabic converts ULY text to Uyghur Arabic script.
//
// The input is lowercased first — output case is not preserved. At each
// position the five digraphs are tried before single-letter lookup. ASCII
// digits and passthrough punctuation survive; unmapped runes are dropped.
//
// Unlike ArabicToLatin, internal whitespace is preserved as-is; only the
// ends of the result are trimmed.
func LatinToArabic(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s) * 2) // Arabic letters are 2 bytes in UTF-8

	for i := 0; i < len(s); {
		// Digraphs are pure ASCII, so a byte-slice probe is safe.
		if i+2 <= len(s) {
			if ar, ok := digraphArabic[s[i:i+2]]; ok {
				b.WriteRune(ar)
				i += 2
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if ar, ok := CoreLatinArabic[r]; ok {
			b.WriteRune(ar)
			continue
		}
		if unicode.IsSpace(r) || (r >= '0' && r <= '9') || isPassthroughPunct(r) {
			b.WriteRune(r)
			continue
		}
		// Unmapped runes are dropped.
	}

	return strings.TrimSpace(b.String())
}

// AutoOptions is accepted by Auto for future extension. Both fields are
// currently ignored; they exist so the dispatch seam's signature survives a
// later confidence-based implementation.
type AutoOptions struct {
	IncludeUnmapped bool // reserved, no effect
	PreserveCase    bool // reserved, no effect
}

// Auto converts s in whichever direction fits: text containing any
// Arabic-script rune goes through ArabicToLatin, everything else through
// LatinToArabic. The presence test uses the same four Unicode block ranges
// as the script package. opts may be nil.
func Auto(s string, opts *AutoOptions) string {
	_ = opts
	if uyrune.ContainsArabicScript(s) {
		return ArabicToLatin(s)
	}
	return LatinToArabic(s)
}

// isASCIIAlnum reports whether r is an ASCII letter or digit.
func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isPassthroughPunct reports whether r belongs to the fixed punctuation set
// that survives conversion in both directions.
func isPassthroughPunct(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '\'', '"', '(', ')', '-':
		return true
	}
	return false
}
