package texpatterns

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/texhyph"
)

type block int

const (
	outside block = iota
	inPatterns
	inHyphenation
)

// PatternReader streams Liang patterns from TeX-style source files.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	block      block
	pending    []string // patterns of the current line not yet handed out
}

// LoadPatterns parses TeX pattern data and returns a ready-to-use dictionary.
//
// Patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal a5ban
//	abe2
//	 ...
//	}
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation. Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => positions["aban"] = [0,5,0,0].
//
// Several patterns may share a line, '%' starts a comment. Lines outside of
// any block are read as patterns as well, which allows reading plain pattern
// lists. Loading stops at the first malformed pattern.
//
// Exceptions from \hyphenation{...} are intentionally not loaded here.
func LoadPatterns(name string, reader io.Reader) (*texhyph.Dictionary, error) {
	r := NewPatternReader(reader)
	dict, err := texhyph.LoadPatterns(name, r)
	if err == nil && dict.Identifier == "" {
		dict.Identifier = r.Identifier()
	}
	return dict, err
}

// NewPatternReader creates a reader for TeX pattern data.
func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the text of the \message{…} of the pattern file, if any.
func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Next returns the next pattern as its text and its tokens.
// It returns io.EOF when exhausted.
func (r *PatternReader) Next() (string, []texhyph.Token, error) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", nil, err
			}
			if r.block == inPatterns {
				return "", nil, errors.New("unexpected end of file (unclosed \\patterns block)")
			}
			return "", nil, io.EOF
		}
		r.pending = r.scanLine(r.scanner.Text())
	}
	text := r.pending[0]
	r.pending = r.pending[1:]
	return text, texhyph.Tokenize(text), nil
}

// scanLine extracts the patterns of a line and tracks TeX blocks.
func (r *PatternReader) scanLine(line string) []string {
	if id, ok := strings.CutPrefix(line, "%     message: "); ok {
		r.identifier = id
		return nil
	}
	line = stripComment(line)
	if msg, ok := strings.CutPrefix(strings.TrimSpace(line), `\message{`); ok {
		if i := strings.LastIndexByte(msg, '}'); i >= 0 {
			msg = msg[:i]
		}
		r.identifier = msg
		return nil
	}
	var patterns []string
	for _, field := range strings.Fields(line) {
		if r.block == inHyphenation {
			if strings.Contains(field, "}") {
				r.block = outside
			}
			continue
		}
		if rest, ok := strings.CutPrefix(field, `\patterns{`); ok {
			r.block = inPatterns
			field = rest
		} else if rest, ok := strings.CutPrefix(field, `\hyphenation{`); ok {
			r.block = inHyphenation
			if strings.Contains(rest, "}") {
				r.block = outside
			}
			continue
		} else if strings.HasPrefix(field, `\`) { // other TeX commands
			continue
		}
		closing := false
		if i := strings.IndexByte(field, '}'); i >= 0 {
			closing = r.block == inPatterns
			field = field[:i]
		}
		if field != "" {
			patterns = append(patterns, field)
		}
		if closing {
			r.block = outside
		}
	}
	return patterns
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		return line[:i]
	}
	return line
}
