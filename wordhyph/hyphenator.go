package wordhyph

import (
	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/hlist"
	"golang.org/x/text/language"
)

// Hyphenator hyphenates words in hlists, using a dictionary per language.
type Hyphenator struct {
	dicts      []*texhyph.Dictionary
	tags       []language.Tag
	matcher    language.Matcher
	leftMin    int // 0: use margins of dictionary
	rightMin   int
	minLength  int
	hyphenChar rune
	fold       func(language.Tag, rune) rune
}

// Option configures a Hyphenator.
type Option func(*Hyphenator)

// WithDictionary registers dict for language tag. Words of related
// languages fall back to the closest dictionary available, e.g. a
// dictionary for "de" is used for words tagged "de-CH".
func WithDictionary(tag language.Tag, dict *texhyph.Dictionary) Option {
	return func(h *Hyphenator) {
		if dict == nil {
			return
		}
		h.tags = append(h.tags, tag)
		h.dicts = append(h.dicts, dict)
	}
}

// WithMargins sets the minimum number of letters in front of and after a
// hyphen, overriding the margins of the dictionaries.
func WithMargins(leftMin, rightMin int) Option {
	return func(h *Hyphenator) {
		h.leftMin, h.rightMin = leftMin, rightMin
	}
}

// WithMinWordLength suppresses hyphenation of words with less than n letters.
func WithMinWordLength(n int) Option {
	return func(h *Hyphenator) {
		h.minLength = n
	}
}

// WithHyphenChar sets the character to use as a hyphen. The default is '-'.
func WithHyphenChar(r rune) Option {
	return func(h *Hyphenator) {
		h.hyphenChar = r
	}
}

// WithCaseFold sets the function to normalize characters with before
// pattern matching. The default lower-cases according to the rules of the
// word's language (see CaseFolder).
func WithCaseFold(fold func(lang language.Tag, r rune) rune) Option {
	return func(h *Hyphenator) {
		h.fold = fold
	}
}

// New creates a Hyphenator.
func New(opts ...Option) *Hyphenator {
	h := &Hyphenator{
		hyphenChar: '-',
		minLength:  2,
	}
	for _, opt := range opts {
		opt(h)
	}
	if len(h.tags) > 0 {
		h.matcher = language.NewMatcher(h.tags)
	}
	return h
}

// Dictionary returns the dictionary to use for words of language tag, or
// nil if there is none.
func (h *Hyphenator) Dictionary(tag language.Tag) *texhyph.Dictionary {
	if h.matcher == nil {
		return nil
	}
	_, index, confidence := h.matcher.Match(tag)
	if confidence == language.No {
		tracer().Debugf("no dictionary for language %s", tag)
		return nil
	}
	return h.dicts[index]
}

func (h *Hyphenator) folder(tag language.Tag) func(rune) rune {
	if h.fold != nil {
		return func(r rune) rune { return h.fold(tag, r) }
	}
	return CaseFolder(tag)
}

func (h *Hyphenator) margins(dict *texhyph.Dictionary) (int, int) {
	left, right := dict.LeftMin, dict.RightMin
	if h.leftMin > 0 {
		left = h.leftMin
	}
	if h.rightMin > 0 {
		right = h.rightMin
	}
	return left, right
}

// HyphenateWord hyphenates the word starting at span.Start, which must not
// extend beyond span.End. It returns true if list has been changed.
func (h *Hyphenator) HyphenateWord(list *hlist.List, span Span, leftMin, rightMin int) bool {
	if list == nil || span.Start < 0 || span.End > len(*list) || span.Start >= span.End {
		return false
	}
	word, _ := Collect((*list)[:span.End], span.Start)
	if word.Start != span.Start {
		tracer().Debugf("no word at start of span %v", span)
		return false
	}
	return h.hyphenate(list, word, leftMin, rightMin)
}

func (h *Hyphenator) hyphenate(list *hlist.List, word Word, leftMin, rightMin int) bool {
	if word.Len() == 0 || word.Len() < h.minLength {
		return false
	}
	dict := h.Dictionary(word.Lang)
	if dict == nil {
		return false
	}
	normalized := Normalize(word, h.folder(word.Lang))
	bp := dict.Breakpoints(normalized.Chars, leftMin, rightMin)
	if !bp.Any() {
		return false
	}
	hyphen := hlist.NewChar(h.hyphenChar, word.Font, word.Lang)
	return InsertBreaks(list, word.Span(), bp, hyphen)
}

// HyphenateList hyphenates every word of list, using the margins of the
// Hyphenator or else those of the dictionaries. It returns the number of
// words which received discretionaries.
func (h *Hyphenator) HyphenateList(list *hlist.List) int {
	if list == nil {
		return 0
	}
	count := 0
	for i := 0; i < len(*list); {
		word, next := Collect(*list, i)
		if word.Len() == 0 {
			break
		}
		before := len(*list)
		if dict := h.Dictionary(word.Lang); dict != nil {
			left, right := h.margins(dict)
			if h.hyphenate(list, word, left, right) {
				count++
			}
		}
		i = next + len(*list) - before
	}
	tracer().Debugf("hyphenated %d words", count)
	return count
}
