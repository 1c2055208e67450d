package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bracketsRe      = regexp.MustCompile(`(\[(.*?)\]|\((.*?)\))`)
	validityRangeRe = regexp.MustCompile(`\((\d{4}\.?(?:\s*[–—-]\s*\d{4}\.?)?)\)\s*$`)
)

// RemoveContentIntoBrackets removes content inside brackets, including brackets
func RemoveContentIntoBrackets(s string) string {
	return bracketsRe.ReplaceAllString(s, "")
}

// RemoveExtraSpaces removes unnecessary spaces in the string
// For example RemoveExtraSpaces("hello  world  ") return "hello world"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.Trim(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}
		} else if idx > 0 {
			idx = 0
		}

		return r
	}, s), " \t")
}

// ValidityRange returns the year range of a historical currency name, e.g. "Zairean Zaire (1971–1993)"
// gives "1971–1993". Annotations that are not years, like "(financial)", are ignored
func ValidityRange(s string) (string, bool) {
	m := validityRangeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// LocaleID converts a BCP 47 style tag into the underscore form used for table keys: "sr-Latn" -> "sr_Latn"
func LocaleID(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), "-", "_")
}

// LanguageTag is the inverse of LocaleID: "bs_Cyrl" -> "bs-Cyrl"
func LanguageTag(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
}
