// Package script classifies the writing systems present in a text span.
//
// Four top-level script groups are recognized: Arabic, Latin, Chinese (CJK
// Unified Ideographs), and Cyrillic. Arabic-script text is further refined
// to Uyghur when it contains at least one letter from a fixed nine-letter
// set that distinguishes Uyghur from plain Arabic or Persian.
//
// Two API layers are provided:
//
//   - Structured: Detect returns a Script value; TextDirection returns a
//     Direction.
//   - Predicates: ContainsArabic, ContainsUyghurChars, IsLikelyUyghur,
//     IsPrimarilyArabic, ContainsLatin, ContainsChinese, ContainsCyrillic,
//     IsRTL.
//
// All functions are safe for concurrent use by multiple goroutines.
package script

import (
	"encoding/json"
	"fmt"
	"unicode"

	"github.com/azataiot/uyghur-utils/internal/uyrune"
)

// Script identifies the dominant writing system of a text span.
type Script int

const (
	Unknown  Script = iota // zero value: empty or unclassifiable input
	Uyghur                 // Arabic script with Uyghur-specific letters
	Arabic                 // Arabic script without Uyghur-specific letters
	Latin                  // Latin letters only
	Chinese                // CJK Unified Ideographs
	Cyrillic               // Cyrillic letters
	Mixed                  // more than one top-level script group
)

// scriptNames maps Script values to their string names.
var scriptNames = [...]string{
	Unknown:  "unknown",
	Uyghur:   "uyghur",
	Arabic:   "arabic",
	Latin:    "latin",
	Chinese:  "chinese",
	Cyrillic: "cyrillic",
	Mixed:    "mixed",
}

// scriptFromName maps string names back to Script values.
var scriptFromName = map[string]Script{
	"unknown":  Unknown,
	"uyghur":   Uyghur,
	"arabic":   Arabic,
	"latin":    Latin,
	"chinese":  Chinese,
	"cyrillic": Cyrillic,
	"mixed":    Mixed,
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// MarshalJSON encodes the script as a JSON string (e.g. "uyghur").
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "uyghur") into a Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sc, ok := scriptFromName[str]
	if !ok {
		return fmt.Errorf("script: unknown script: %q", str)
	}
	*s = sc
	return nil
}

// Direction is the dominant reading direction of a text span.
type Direction int

const (
	LTR Direction = iota // left-to-right
	RTL                  // right-to-left
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// uyghurSpecific is the nine-letter set that distinguishes Uyghur from other
// Arabic-script languages: the hamza carrier, the five Uyghur vowel letters,
// the ng letter, gaf, and the Uyghur yeh form.
var uyghurSpecific = map[rune]bool{
	'ئ': true, // ئ hamza on yeh
	'ە': true, // ە
	'ې': true, // ې
	'ۆ': true, // ۆ
	'ۈ': true, // ۈ
	'ۇ': true, // ۇ
	'ڭ': true, // ڭ
	'گ': true, // گ
	'ى': true, // ى
}

// ContainsArabic reports whether s contains any Arabic-script rune (the
// Arabic, Arabic Supplement, and both Presentation Forms blocks).
func ContainsArabic(s string) bool {
	return uyrune.ContainsArabicScript(s)
}

// IsPrimarilyArabic reports whether strictly more than half of the
// non-whitespace runes of s are Arabic-script. Returns false for input with
// no non-whitespace runes.
func IsPrimarilyArabic(s string) bool {
	var total, arabic int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if uyrune.IsArabicScript(r) {
			arabic++
		}
	}
	if total == 0 {
		return false
	}
	return arabic*2 > total
}

// ContainsUyghurChars reports whether s contains any letter from the fixed
// Uyghur-distinguishing set.
func ContainsUyghurChars(s string) bool {
	for _, r := range s {
		if uyghurSpecific[r] {
			return true
		}
	}
	return false
}

// IsLikelyUyghur reports whether s is Arabic-script text that contains at
// least one Uyghur-specific letter.
func IsLikelyUyghur(s string) bool {
	return ContainsArabic(s) && ContainsUyghurChars(s)
}

// ContainsLatin reports whether s contains any Latin letter.
func ContainsLatin(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// ContainsChinese reports whether s contains any CJK Unified Ideograph
// (U+4E00–U+9FFF).
func ContainsChinese(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

// ContainsCyrillic reports whether s contains any Cyrillic letter
// (U+0400–U+04FF).
func ContainsCyrillic(s string) bool {
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}

// Detect classifies s into a single Script value.
//
// Empty or all-whitespace input is Unknown. When more than one of the four
// top-level groups {Arabic, Latin, Chinese, Cyrillic} is present the result
// is Mixed regardless of Uyghur-specific letters. A lone Arabic-script text
// is Uyghur when it contains a Uyghur-specific letter, otherwise Arabic.
// Tie-break precedence is Arabic > Latin > Chinese > Cyrillic.
func Detect(s string) Script {
	if s == "" {
		return Unknown
	}
	allSpace := true
	for _, r := range s {
		if !unicode.IsSpace(r) {
			allSpace = false
			break
		}
	}
	if allSpace {
		return Unknown
	}

	hasArabic := ContainsArabic(s)
	hasLatin := ContainsLatin(s)
	hasChinese := ContainsChinese(s)
	hasCyrillic := ContainsCyrillic(s)

	count := 0
	for _, present := range []bool{hasArabic, hasLatin, hasChinese, hasCyrillic} {
		if present {
			count++
		}
	}
	if count > 1 {
		return Mixed
	}

	switch {
	case hasArabic:
		if ContainsUyghurChars(s) {
			return Uyghur
		}
		return Arabic
	case hasLatin:
		return Latin
	case hasChinese:
		return Chinese
	case hasCyrillic:
		return Cyrillic
	}
	return Unknown
}

// IsRTL reports whether s reads right to left. Arabic-script presence alone
// is not enough: the Arabic runes must dominate, so one Arabic word inside a
// mostly-Latin sentence is not flagged RTL.
func IsRTL(s string) bool {
	return ContainsArabic(s) && IsPrimarilyArabic(s)
}

// TextDirection returns RTL when IsRTL holds and LTR otherwise.
func TextDirection(s string) Direction {
	if IsRTL(s) {
		return RTL
	}
	return LTR
}
