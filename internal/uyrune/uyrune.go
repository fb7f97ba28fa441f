// Package uyrune holds rune predicates and whitespace helpers shared by the
// public packages. The Arabic-script block test lives here so that the
// classifier and the transliteration auto-dispatch agree on the exact same
// Unicode ranges.
package uyrune

import (
	"strings"
	"unicode"
)

// IsArabicScript reports whether r falls in one of the four Arabic-script
// Unicode blocks: Arabic, Arabic Supplement, and both Presentation Forms.
func IsArabicScript(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF: // Arabic
		return true
	case r >= 0x0750 && r <= 0x077F: // Arabic Supplement
		return true
	case r >= 0xFB50 && r <= 0xFDFF: // Arabic Presentation Forms-A
		return true
	case r >= 0xFE70 && r <= 0xFEFF: // Arabic Presentation Forms-B
		return true
	}
	return false
}

// ContainsArabicScript reports whether any rune of s is Arabic-script.
func ContainsArabicScript(s string) bool {
	for _, r := range s {
		if IsArabicScript(r) {
			return true
		}
	}
	return false
}

// CollapseSpace replaces every run of Unicode whitespace in s with a single
// ASCII space and trims leading and trailing whitespace.
func CollapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
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
