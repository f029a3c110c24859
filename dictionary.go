package texhyph

import (
	"fmt"
	"io"
	"strings"

	"github.com/derekparker/trie"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Default margins, as set by plain TeX (\lefthyphenmin, \righthyphenmin).
const (
	DefaultLeftMin  = 2
	DefaultRightMin = 3
)

// PatternReader yields patterns one-by-one, as the text of the pattern (for
// error messages) and its tokens.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (text string, tokens []Token, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one.
// positions[k] is odd if the word may be hyphenated in front of letter k.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// Dictionary is a loaded hyphenation dictionary for a language.
//
// A dictionary contains:
//   - pattern rules (compiled into a pattern tree)
//   - explicit hyphenation exceptions, which take precedence over patterns.
type Dictionary struct {
	Identifier string // Identifies the dictionary
	LeftMin    int    // minimum number of letters in front of a hyphen
	RightMin   int    // minimum number of letters after a hyphen
	// Lang selects the case folding rules for words and exceptions.
	// It has to be set before exceptions are added.
	Lang       language.Tag
	tree       *PatternTree
	exceptions *trie.Trie // e.g., "computer" => Breakpoints of "com-put-er"
}

// NewDictionary wraps a pattern tree into a dictionary without exceptions.
// The tree should not be modified afterwards.
func NewDictionary(name string, tree *PatternTree) *Dictionary {
	if tree == nil {
		tree = NewPatternTree()
	}
	return &Dictionary{
		Identifier: name,
		LeftMin:    DefaultLeftMin,
		RightMin:   DefaultRightMin,
		tree:       tree,
		exceptions: trie.New(),
	}
}

// LoadPatterns compiles patterns from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package tex/texpatterns to parse concrete formats and feed this API.
//
// Loading stops at the first malformed pattern; the error is a *PatternError
// carrying the pattern text and its position in the stream. Duplicate
// patterns are superimposed. The resulting pattern tree is compressed.
func LoadPatterns(name string, reader PatternReader) (*Dictionary, error) {
	tree := NewPatternTree()
	count := 0
	for {
		text, tokens, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading patterns for %s: %w", name, err)
		}
		count++
		if err = tree.Insert(tokens); err != nil {
			if perr, ok := err.(*PatternError); ok {
				if text != "" {
					perr.Pattern = text
				}
				perr.Ordinal = count
			}
			tracer().Errorf("%s: %v", name, err)
			return nil, err
		}
	}
	tree.Compress()
	stats := tree.Stats()
	tracer().Infof("loaded %d patterns for %s: nodes=%d codes=%d", stats.Patterns, name,
		stats.Nodes, stats.Codes)
	return NewDictionary(name, tree), nil
}

// Tree returns the pattern tree of dict.
func (dict *Dictionary) Tree() *PatternTree {
	return dict.tree
}

// PatternTrieStats reports size metrics for the underlying pattern tree.
func (dict *Dictionary) PatternTrieStats() TreeStats {
	if dict == nil || dict.tree == nil {
		return TreeStats{}
	}
	return dict.tree.Stats()
}

// LoadExceptions loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptions(reader ExceptionReader) (err error) {
	for {
		var word string
		var positions []int
		word, positions, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			break
		}
		dict.AddException(word, positions)
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (dict *Dictionary) LoadExceptionList(exceptions map[string][]int) {
	for word, positions := range exceptions {
		dict.AddException(word, positions)
	}
}

// AddException registers one explicit hyphenation exception.
// positions[k] is odd if word may be hyphenated in front of letter k.
// Exception words are stored in the form produced by Fold.
func (dict *Dictionary) AddException(word string, positions []int) {
	if dict.exceptions == nil {
		dict.exceptions = trie.New()
	}
	chars := dict.Fold(word)
	n := len(chars)
	bp := make(Breakpoints, n+1)
	for k, p := range positions {
		if k > 0 && k < n && p%2 == 1 {
			bp[k] = true
		}
	}
	dict.exceptions.Add(string(chars), bp)
}

// ExceptionCount returns the number of registered exceptions.
func (dict *Dictionary) ExceptionCount() int {
	if dict == nil || dict.exceptions == nil {
		return 0
	}
	return len(dict.exceptions.Keys())
}

func (dict *Dictionary) exception(word []rune) (Breakpoints, bool) {
	if dict.exceptions == nil {
		return nil, false
	}
	node, ok := dict.exceptions.Find(string(word))
	if !ok {
		return nil, false
	}
	bp, ok := node.Meta().(Breakpoints)
	return bp, ok
}

// Breakpoints hyphenates a normalized word. Exceptions take precedence over
// patterns; the margins leftMin and rightMin apply to both.
func (dict *Dictionary) Breakpoints(word []rune, leftMin, rightMin int) Breakpoints {
	if dict == nil {
		return make(Breakpoints, len(word)+1)
	}
	if exc, ok := dict.exception(word); ok && len(exc) == len(word)+1 {
		n := len(word)
		leftMin, rightMin = max(leftMin, 1), max(rightMin, 1)
		bp := make(Breakpoints, n+1)
		if leftMin+rightMin >= n {
			return bp
		}
		for k := leftMin; k <= n-rightMin; k++ {
			bp[k] = exc[k]
		}
		tracer().Debugf("hyphenate %q from exception: %s", string(word), bp)
		return bp
	}
	return Hyphenate(word, leftMin, rightMin, dict.tree)
}

// HyphenationString returns word with hyphens inserted at legal positions.
// Example:
//
//	"table" => "ta-ble".
func (dict *Dictionary) HyphenationString(word string) string {
	s := dict.Hyphenate(word)
	return strings.Join(s, "-")
}

// Hyphenate splits word at legal hyphenation positions, respecting the
// margins of dict. Words are folded (see Fold) for matching.
//
// Example:
//
//	"table" => [ "ta", "ble" ].
func (dict *Dictionary) Hyphenate(word string) []string {
	if dict == nil || dict.tree == nil {
		return []string{word}
	}
	chars := []rune(norm.NFC.String(word))
	bp := dict.Breakpoints(dict.Fold(word), dict.LeftMin, dict.RightMin)
	return bp.Split(chars)
}

// Fold returns word in the form used for matching: NFC-normalized and
// lower-cased by the rules of dict.Lang, one character per character of
// the normalized input.
func (dict *Dictionary) Fold(word string) []rune {
	chars := []rune(norm.NFC.String(word))
	fold := CaseFolder(dict.Lang)
	for i, r := range chars {
		chars[i] = fold(r)
	}
	return chars
}
