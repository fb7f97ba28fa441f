// Package normalize canonicalizes Uyghur Arabic-script text.
//
// Uyghur text in the wild mixes composed and decomposed Unicode forms,
// Persian/Arabic letter variants typed on the wrong keyboard layout, and
// invisible direction marks. NormalizeUyghur folds all of that into one
// canonical spelling. NormalizeForSearch goes further and deliberately
// destroys distinctions (diacritics, hamza, case, punctuation) so that two
// spellings of the same word compare equal.
//
// Pipeline order matters: Unicode composition runs before variant
// substitution, and substitution before whitespace collapsing, because
// substitutions can introduce deletable characters.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/azataiot/uyghur-utils/internal/uyrune"
)

// variantReplacer folds letter variants and strips invisible marks in a
// single pass. Alternate hamza forms become the hamza+alef sequence;
// Arabic/Persian kaf, yeh, and heh variants become their Uyghur
// counterparts; zero-width and direction marks are deleted.
var variantReplacer = strings.NewReplacer(
	// Hamza variants -> hamza carrier + alef.
	"أ", "ئا", // أ -> ئا
	"إ", "ئا", // إ -> ئا
	"آ", "ئا", // آ -> ئا
	"ٵ", "ئا", // ٵ -> ئا
	// Letter variants -> Uyghur forms.
	"ک", "ك", // ک kehah -> ك
	"ی", "ى", // ی Farsi yeh -> ى
	"ه", "ھ", // ه Arabic heh -> ھ
	// Invisible marks -> deleted.
	"\u200C", "", // ZWNJ
	"\u200D", "", // ZWJ
	"\u200E", "", // LRM
	"\u200F", "", // RLM
	"\uFEFF", "", // BOM
)

// hamzaFamily is the six-character hamza set removed by RemoveHamza.
var hamzaFamily = map[rune]bool{
	'ئ': true, // ئ hamza on yeh
	'ء': true, // ء standalone hamza
	'أ': true, // أ hamza on alef
	'إ': true, // إ hamza below alef
	'آ': true, // آ madda on alef
	'ؤ': true, // ؤ hamza on waw
}

// NormalizeUyghur returns the canonical form of s: Unicode NFC composition,
// then variant folding and invisible-mark removal, then whitespace
// collapsing and trimming.
func NormalizeUyghur(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = variantReplacer.Replace(s)
	return uyrune.CollapseSpace(s)
}

// RemoveDiacritics deletes the Arabic combining diacritics U+064B–U+0652
// (tanwin, short vowels, shadda, sukun). Nothing else is touched.
func RemoveDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x064B && r <= 0x0652 {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveHamza deletes every character of the hamza family: the carrier ئ,
// standalone ء, the hamza-on-alef variants أ إ آ, and hamza-on-waw ؤ.
func RemoveHamza(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if hamzaFamily[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// searchPunct is the punctuation deleted by NormalizeForSearch: ASCII and
// Arabic-specific marks that never distinguish words.
var searchPunct = map[rune]bool{
	'.': true, ',': true, '!': true, '?': true, ';': true, ':': true,
	'\'': true, '"': true, '(': true, ')': true, '[': true, ']': true,
	'،': true, // ، Arabic comma
	'؛': true, // ؛ Arabic semicolon
	'؟': true, // ؟ Arabic question mark
	'۔': true, // ۔ Arabic full stop
	'«': true, // «
	'»': true, // »
}

// NormalizeForSearch reduces s to its most aggressive comparable form:
// NormalizeUyghur, then diacritic and hamza removal, Latin case folding,
// punctuation deletion, and a final whitespace collapse.
//
// The result answers "are these the same word", not "how is it spelled" —
// the transformation is lossy by design and idempotent.
func NormalizeForSearch(s string) string {
	s = NormalizeUyghur(s)
	s = RemoveDiacritics(s)
	s = RemoveHamza(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if searchPunct[r] {
			continue
		}
		if unicode.Is(unicode.Latin, r) {
			// ULY uppercase reaches beyond ASCII (É, Ö, Ü).
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return uyrune.CollapseSpace(b.String())
}

// AreEquivalent reports whether a and b normalize to the same search form.
// Comparison is exact string equality after NormalizeForSearch; there is no
// fuzzy matching.
func AreEquivalent(a, b string) bool {
	return NormalizeForSearch(a) == NormalizeForSearch(b)
}

// TrimAndNormalize cleans up generic text without any Arabic-specific
// rules: line endings become LF, horizontal whitespace runs collapse to one
// space, runs of blank lines cap at one (at most two consecutive line
// breaks), and the ends are trimmed.
func TrimAndNormalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = collapseHorizontal(line)
	}

	var out []string
	blankRun := 0
	for _, line := range lines {
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n ")
}

// collapseHorizontal collapses runs of spaces and tabs within a single line
// and trims its ends.
func collapseHorizontal(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	inSpace := false
	for _, r := range line {
		if r == ' ' || r == '\t' {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
