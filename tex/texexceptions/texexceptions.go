package texexceptions

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

// Reader streams hyphenation exceptions from TeX \hyphenation{...} blocks.
type Reader struct {
	scanner *bufio.Scanner
	block   block
	pending []string // entries of the current line not yet handed out
}

// LoadExceptions parses TeX exception data from reader and adds all
// \hyphenation{...} entries to this dictionary.
func LoadExceptions(dict *texhyph.Dictionary, reader io.Reader) error {
	return dict.LoadExceptions(NewReader(reader))
}

// NewReader creates a reader for the exceptions of TeX pattern files.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, positions), where positions[k]
// is 1 if the word may be hyphenated in front of letter k.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []int, error) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", nil, err
			}
			if r.block == inHyphenation {
				return "", nil, errors.New("unexpected end of file (unclosed \\hyphenation block)")
			}
			return "", nil, io.EOF
		}
		r.pending = r.scanLine(r.scanner.Text())
	}
	entry := r.pending[0]
	r.pending = r.pending[1:]
	word, positions := decodeEntry(entry)
	return word, positions, nil
}

// scanLine extracts the exception entries of a line and tracks TeX blocks.
func (r *Reader) scanLine(line string) []string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	var entries []string
	for _, field := range strings.Fields(line) {
		switch r.block {
		case inPatterns:
			if strings.Contains(field, "}") {
				r.block = outside
			}
			continue
		case outside:
			if rest, ok := strings.CutPrefix(field, `\patterns{`); ok {
				r.block = inPatterns
				if strings.Contains(rest, "}") {
					r.block = outside
				}
				continue
			}
			rest, ok := strings.CutPrefix(field, `\hyphenation{`)
			if !ok {
				continue
			}
			r.block = inHyphenation
			field = rest
		}
		if i := strings.IndexByte(field, '}'); i >= 0 {
			field = field[:i]
			r.block = outside
		}
		if field != "" {
			entries = append(entries, field)
		}
	}
	return entries
}

// decodeEntry converts "ta-ble" to ("table", [0,0,1,0,0]).
func decodeEntry(entry string) (string, []int) {
	positions := make([]int, 0, len(entry))
	wasHyphen := false
	for _, ch := range entry {
		if ch == '-' {
			if len(positions) > 0 {
				positions = append(positions, 1)
				wasHyphen = true
			}
		} else if wasHyphen {
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	return strings.ReplaceAll(entry, "-", ""), positions
}
