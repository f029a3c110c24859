package texhyph

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseFolder returns a lower-casing function following the rules of
// language tag. Characters which do not lower-case to a single character
// are left unchanged, so folding never changes the length of a word.
//
// The returned function is not safe for concurrent use.
func CaseFolder(tag language.Tag) func(rune) rune {
	caser := cases.Lower(tag)
	var buf [utf8.UTFMax]byte
	return func(r rune) rune {
		n := utf8.EncodeRune(buf[:], r)
		s := caser.String(string(buf[:n]))
		lower, size := utf8.DecodeRuneInString(s)
		if size != len(s) || lower == utf8.RuneError {
			return r
		}
		return lower
	}
}
