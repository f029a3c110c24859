package texhyph

import (
	"strings"
)

// WordStart and WordEnd are the word boundary sentinels. They are not valid
// Unicode code points and take part in pattern matching like letters.
// In TeX pattern syntax both are written as '.'.
const (
	WordStart rune = -1
	WordEnd   rune = -2
)

// BoundaryChar is the character denoting a word boundary in pattern text.
const BoundaryChar = '.'

// MaxWeight is the largest hyphenation weight a pattern may carry.
const MaxWeight = 9

// Code is a vector of hyphenation weights, one per gap between the characters
// of a pattern. A code for a pattern of n characters has n+1 entries: entry i
// is the weight of the gap in front of character i.
// Odd weights denote desirable break points, even weights suppress breaks.
type Code []uint8

// zeroCode is the result of a lookup without any matching pattern.
var zeroCode = Code{0}

// Superimpose merges src into c at offset at, taking the element-wise
// maximum. c is grown if necessary and returned.
func (c Code) Superimpose(src Code, at int) Code {
	for i, w := range src {
		abs := at + i
		for abs >= len(c) {
			c = append(c, 0)
		}
		if w > c[abs] {
			c[abs] = w
		}
	}
	return c
}

// Equal returns true if c and other carry identical weights.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// IsZero is true if every weight of c is 0.
func (c Code) IsZero() bool {
	for _, w := range c {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy of c which does not share storage with c.
func (c Code) Clone() Code {
	if c == nil {
		return nil
	}
	cc := make(Code, len(c))
	copy(cc, c)
	return cc
}

func (c Code) String() string {
	var sb strings.Builder
	for _, w := range c {
		sb.WriteByte('0' + w)
	}
	return sb.String()
}

// key returns a string usable as a map key for the content of c.
func (c Code) key() string {
	return string(c)
}

// charString renders a rune sequence in pattern syntax, i.e. with sentinels
// written as '.'.
func charString(chars []rune) string {
	var sb strings.Builder
	for _, r := range chars {
		if r == WordStart || r == WordEnd {
			sb.WriteRune(BoundaryChar)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// patternString renders chars interleaved with the non-zero weights of code,
// i.e. in the same notation as TeX pattern files ("4pe.").
func patternString(chars []rune, code Code) string {
	var sb strings.Builder
	for i, r := range chars {
		if i < len(code) && code[i] != 0 {
			sb.WriteByte('0' + code[i])
		}
		if r == WordStart || r == WordEnd {
			sb.WriteRune(BoundaryChar)
		} else {
			sb.WriteRune(r)
		}
	}
	if len(code) > len(chars) && code[len(chars)] != 0 {
		sb.WriteByte('0' + code[len(chars)])
	}
	return sb.String()
}
