package gen

import (
	"strings"
	"unicode"
)

// Glyph names are PostScript names and may contain characters which have no
// business in a source-code identifier. Names containing any of these after
// substitution are dropped entirely.
const disallowedChars = "+-*/@!#$%^&()=~`;:\"',<>?. []{}|\\"

// Spelled-out digits, indexed by digit value.
var digitWords = [10]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// SanitizeName turns a glyph name into a canonical identifier:
//
//   - every '-' becomes '_',
//   - every decimal digit is spelled out in place ("1" -> "one",
//     "a1b" -> "aoneb"),
//   - a name consisting of a single '_' after the above becomes
//     "underscore".
//
// Names which still contain a disallowed character are rejected; the
// second return value reports whether the name survived. Names already
// free of digits, dashes and disallowed characters pass through unchanged.
//
// The disallowed set covers ASCII punctuation only. Characters outside it
// which still cannot appear in an identifier (non-ASCII punctuation,
// control characters) are rejected as well; a rejected name drops one
// glyph, where an unrenderable identifier would abort the whole pass.
func SanitizeName(name string) (string, bool) {
	sanitized := strings.ReplaceAll(name, "-", "_")
	if strings.ContainsAny(sanitized, "0123456789") {
		var b strings.Builder
		for _, r := range sanitized {
			if r >= '0' && r <= '9' {
				b.WriteString(digitWords[r-'0'])
			} else {
				b.WriteRune(r)
			}
		}
		sanitized = b.String()
	}
	if sanitized == "_" {
		sanitized = "underscore"
	}
	if strings.ContainsAny(sanitized, disallowedChars) {
		return "", false
	}
	for _, r := range sanitized {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", false
		}
	}
	return sanitized, true
}
