// Package numeral converts text between Western and Arabic-Indic digit
// systems and extracts numbers from mixed-digit text.
//
// Two digit ranges are recognized on input: Arabic-Indic (U+0660–U+0669,
// used in Uyghur and Arabic text) and Extended Arabic-Indic (U+06F0–U+06F9,
// Persian/Urdu style). Output conversion targets Arabic-Indic only — there
// is deliberately no Western→Extended direction.
//
// All functions are safe for concurrent use by multiple goroutines.
package numeral

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// System identifies a digit system for formatting.
type System int

const (
	Western     System = iota // ASCII digits 0–9
	ArabicIndic               // ٠–٩ (U+0660–U+0669)
)

// systemNames maps System values to their string names.
var systemNames = [...]string{
	Western:     "western",
	ArabicIndic: "arabic-indic",
}

// systemFromName maps string names back to System values.
var systemFromName = map[string]System{
	"western":      Western,
	"arabic-indic": ArabicIndic,
}

// String returns the name of the digit system.
func (s System) String() string {
	if int(s) >= 0 && int(s) < len(systemNames) {
		return systemNames[s]
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// MarshalJSON encodes the system as a JSON string (e.g. "arabic-indic").
func (s System) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "arabic-indic") into a System.
func (s *System) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sys, ok := systemFromName[str]
	if !ok {
		return fmt.Errorf("numeral: unknown system: %q", str)
	}
	*s = sys
	return nil
}

const (
	arabicIndicZero = '٠' // ٠
	arabicIndicNine = '٩' // ٩
	extendedZero    = '۰' // ۰
	extendedNine    = '۹' // ۹
)

// ToWestern replaces every Arabic-Indic and Extended Arabic-Indic digit in s
// with its ASCII equivalent. All other characters pass through untouched.
func ToWestern(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r >= arabicIndicZero && r <= arabicIndicNine:
			b.WriteRune('0' + (r - arabicIndicZero))
		case r >= extendedZero && r <= extendedNine:
			b.WriteRune('0' + (r - extendedZero))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ToArabicIndic replaces every ASCII digit in s with its Arabic-Indic
// equivalent. There is no Extended Arabic-Indic output direction.
func ToArabicIndic(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * 2) // Arabic-Indic digits are 2 bytes in UTF-8

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(arabicIndicZero + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ContainsArabicIndic reports whether s contains any Arabic-Indic or
// Extended Arabic-Indic digit.
func ContainsArabicIndic(s string) bool {
	for _, r := range s {
		if (r >= arabicIndicZero && r <= arabicIndicNine) ||
			(r >= extendedZero && r <= extendedNine) {
			return true
		}
	}
	return false
}

// ContainsWestern reports whether s contains any ASCII digit.
func ContainsWestern(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// ExtractNumbers returns every maximal digit run in s as an integer, in
// left-to-right order. Arabic-Indic digits count: the text is converted to
// Western digits first. Runs too long to fit in int64 are skipped. Text
// with no digits returns nil.
func ExtractNumbers(s string) []int64 {
	if s == "" {
		return nil
	}

	s = ToWestern(s)

	var nums []int64
	start := -1
	for i := 0; i <= len(s); i++ {
		isDigit := i < len(s) && s[i] >= '0' && s[i] <= '9'
		if isDigit {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			run := s[start:i]
			start = -1
			n, err := strconv.ParseInt(run, 10, 64)
			if err != nil {
				continue // overflow
			}
			nums = append(nums, n)
		}
	}

	return nums
}

// Format renders n in the given digit system. Western output is plain
// base-10; ArabicIndic output converts each digit. Unrecognized systems
// fall back to Western.
func Format(n int64, sys System) string {
	s := strconv.FormatInt(n, 10)
	if sys == ArabicIndic {
		return ToArabicIndic(s)
	}
	return s
}

// Parse converts a digit string in either system to an integer. The input
// is trimmed and converted to Western digits first.
//
// Returns an error for empty, non-numeric, or out-of-range input — the Go
// analogue of a not-a-number sentinel. Parse never panics.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("numeral: empty input")
	}

	s = ToWestern(s)

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numeral: not a number: %q", s)
	}
	return n, nil
}
