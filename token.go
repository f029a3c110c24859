package texhyph

import (
	"strings"
	"unicode"
)

// Token is an element of a pattern: either a letter (including the boundary
// sentinels) or a digit weight. Pattern sources hand patterns to the pattern
// tree as token sequences.
type Token struct {
	Char   rune // letter, WordStart or WordEnd; unused for digits
	Weight int  // weight of a digit token
	digit  bool
}

// Letter creates a letter token.
func Letter(r rune) Token {
	return Token{Char: r}
}

// Digit creates a digit token.
func Digit(w int) Token {
	return Token{Weight: w, digit: true}
}

// IsDigit is true for digit tokens.
func (t Token) IsDigit() bool {
	return t.digit
}

func (t Token) String() string {
	if t.digit {
		return string(rune('0' + t.Weight))
	}
	if t.Char == WordStart || t.Char == WordEnd {
		return string(BoundaryChar)
	}
	return string(t.Char)
}

// TokensString renders a token sequence in TeX pattern syntax.
func TokensString(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Tokenize splits a pattern in TeX notation into tokens, e.g.
//
//	"4pe." => (4)(p)(e)(END)
//
// A '.' in front of the first letter is WordStart, every other '.' is
// WordEnd. Tokenize does not validate the pattern; the pattern tree rejects
// malformed token sequences on insertion.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, 0, len(pattern))
	seenLetter := false
	for _, ch := range pattern {
		switch {
		case ch >= '0' && ch <= '9':
			tokens = append(tokens, Digit(int(ch-'0')))
		case ch == BoundaryChar && !seenLetter:
			tokens = append(tokens, Letter(WordStart))
			seenLetter = true
		case ch == BoundaryChar:
			tokens = append(tokens, Letter(WordEnd))
		default:
			tokens = append(tokens, Letter(ch))
			seenLetter = true
		}
	}
	return tokens
}

// ParsePattern tokenizes a pattern in TeX notation and validates it.
// It returns a *PatternError of kind MalformedPattern if it is invalid.
func ParsePattern(pattern string) ([]Token, error) {
	tokens := Tokenize(pattern)
	if _, _, err := compilePattern(tokens); err != nil {
		err.Pattern = pattern
		return nil, err
	}
	return tokens, nil
}

// compilePattern separates a token sequence into the character sequence to
// match and its weight code. It enforces the alternation rule of letters and
// digits; the returned code has len(chars)+1 entries.
func compilePattern(tokens []Token) ([]rune, Code, *PatternError) {
	text := TokensString(tokens)
	chars := make([]rune, 0, len(tokens))
	code := make(Code, 0, len(tokens)+1)
	var pending uint8
	wasDigit, endSeen, letters := false, false, 0
	for i, t := range tokens {
		if t.IsDigit() {
			if wasDigit {
				return nil, nil, malformed(text, "two digits in a row at token %d", i+1)
			}
			if t.Weight < 0 || t.Weight > MaxWeight {
				return nil, nil, malformed(text, "weight %d out of range 0…%d", t.Weight, MaxWeight)
			}
			pending, wasDigit = uint8(t.Weight), true
			continue
		}
		r := t.Char
		switch {
		case endSeen:
			return nil, nil, malformed(text, "character after end-of-word marker")
		case r == WordStart:
			if len(chars) > 0 {
				return nil, nil, malformed(text, "start-of-word marker inside pattern")
			}
		case r == WordEnd:
			if letters == 0 {
				return nil, nil, malformed(text, "end-of-word marker without preceding letter")
			}
			endSeen = true
		case isPatternLetter(r):
			letters++
		default:
			return nil, nil, malformed(text, "unrecognized character %q", r)
		}
		code = append(code, pending)
		chars = append(chars, r)
		pending, wasDigit = 0, false
	}
	if letters == 0 {
		return nil, nil, malformed(text, "pattern contains no letters")
	}
	code = append(code, pending)
	return chars, code, nil
}

// isPatternLetter decides which runes may appear in a pattern besides the
// boundary sentinels. Apostrophes occur in patterns of several languages.
func isPatternLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || r == '\'' || r == '’'
}
