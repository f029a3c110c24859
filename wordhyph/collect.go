package wordhyph

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/hlist"
	"golang.org/x/text/language"
)

// Span is a half-open range [Start, End) of top-level list elements.
type Span struct {
	Start, End int
}

// Word is a word collected from an hlist.
type Word struct {
	Chars      []rune       // letters of the word, ligatures flattened
	Start, End int          // list elements the word was collected from
	Lang       language.Tag // language of the word's first letter
	Font       hlist.Font   // font of the word's first letter
}

// Len returns the number of characters of w.
func (w Word) Len() int {
	return len(w.Chars)
}

func (w Word) String() string {
	return string(w.Chars)
}

// Span returns the range of list elements w was collected from.
func (w Word) Span() Span {
	return Span{Start: w.Start, End: w.End}
}

// isLetter decides which characters take part in hyphenation.
func isLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}

// context is the language and font of a word.
type context struct {
	lang language.Tag
	font hlist.Font
}

func (ctx context) accepts(c *hlist.Char) bool {
	return isLetter(c.Code) && c.Lang == ctx.lang && c.Font == ctx.font
}

func (ctx context) acceptsLigature(lig *hlist.Ligature) bool {
	for _, c := range lig.Components {
		if !ctx.accepts(c) {
			return false
		}
	}
	return true
}

// charRef locates a character of a word in a list.
type charRef struct {
	elem   int  // index of the top-level element
	comp   int  // component index for ligatures, 0 otherwise
	inDisc bool // character is part of a pre-existing discretionary
}

// Collect extracts the next word from list, starting at index start.
//
// Leading elements which are not letters are skipped. The word then extends
// over all letters sharing the language and font of its first letter.
// Ligatures contribute their components, marks and implicit kerns are
// skipped, and discretionaries contribute the letters of their no-break
// material. Any other element ends the word: glue, penalties, explicit
// kerns, non-letter characters, or letters of a different language or font.
//
// Collect returns the word and the index to continue collecting from. If no
// word is found, the word is empty and the index is len(list).
func Collect(list hlist.List, start int) (Word, int) {
	start = max(start, 0)
	i := start
	for ; i < len(list); i++ { // find first letter
		if ctx, ok := letterContext(list[i]); ok {
			w, _ := collectFrom(list, i, ctx)
			tracer().Debugf("collected word %q from [%d,%d)", w.String(), w.Start, w.End)
			return w, w.End
		}
	}
	return Word{Start: len(list), End: len(list)}, len(list)
}

// letterContext returns the context of an element which may start a word.
func letterContext(e hlist.Elem) (context, bool) {
	switch e := e.(type) {
	case *hlist.Char:
		if isLetter(e.Code) {
			return context{lang: e.Lang, font: e.Font}, true
		}
	case *hlist.Ligature:
		ctx := context{lang: e.Lang, font: e.Font}
		if len(e.Components) > 0 {
			ctx = context{lang: e.Components[0].Lang, font: e.Components[0].Font}
		}
		if ctx.acceptsLigature(e) {
			return ctx, true
		}
	case *hlist.Discretionary, *hlist.Kern, *hlist.Mark, *hlist.Glue, *hlist.Penalty:
	default:
		panic(fmt.Sprintf("unknown hlist element %T", e))
	}
	return context{}, false
}

// collectFrom collects the word starting with the letter at list[first].
// It returns the word and the position of every character in the list.
func collectFrom(list hlist.List, first int, ctx context) (Word, []charRef) {
	w := Word{Start: first, End: first, Lang: ctx.lang, Font: ctx.font}
	var refs []charRef
	i := first
	for ; i < len(list); i++ {
		n := len(w.Chars)
		switch e := list[i].(type) {
		case *hlist.Char:
			if !ctx.accepts(e) {
				return w, refs
			}
			w.Chars = append(w.Chars, e.Code)
			refs = append(refs, charRef{elem: i})
		case *hlist.Ligature:
			if !ctx.acceptsLigature(e) {
				return w, refs
			}
			for j, c := range e.Components {
				w.Chars = append(w.Chars, c.Code)
				refs = append(refs, charRef{elem: i, comp: j})
			}
		case *hlist.Discretionary:
			letters, ok := discLetters(e.NoBreak, ctx)
			if !ok {
				return w, refs
			}
			w.Chars = append(w.Chars, letters...)
			for j := range letters {
				refs = append(refs, charRef{elem: i, comp: j, inDisc: true})
			}
		case *hlist.Kern:
			if e.Explicit {
				return w, refs
			}
		case *hlist.Mark:
		case *hlist.Glue, *hlist.Penalty:
			return w, refs
		default:
			panic(fmt.Sprintf("unknown hlist element %T", e))
		}
		if len(w.Chars) > n {
			w.End = i + 1 // trailing marks and kerns are not part of the word
		}
	}
	return w, refs
}

// discLetters collects the letters of the no-break branch of a
// discretionary. It fails if the branch contains anything which would end
// a word.
func discLetters(nobreak hlist.List, ctx context) ([]rune, bool) {
	var letters []rune
	for _, e := range nobreak {
		switch e := e.(type) {
		case *hlist.Char:
			if !ctx.accepts(e) {
				return nil, false
			}
			letters = append(letters, e.Code)
		case *hlist.Ligature:
			if !ctx.acceptsLigature(e) {
				return nil, false
			}
			for _, c := range e.Components {
				letters = append(letters, c.Code)
			}
		case *hlist.Kern:
			if e.Explicit {
				return nil, false
			}
		case *hlist.Mark:
		case *hlist.Discretionary, *hlist.Glue, *hlist.Penalty:
			return nil, false
		default:
			panic(fmt.Sprintf("unknown hlist element %T", e))
		}
	}
	return letters, true
}

// Normalize returns a copy of w with fold applied to every character.
// The list w has been collected from is not touched.
func Normalize(w Word, fold func(rune) rune) Word {
	chars := make([]rune, len(w.Chars))
	for i, r := range w.Chars {
		if fold != nil {
			r = fold(r)
		}
		chars[i] = r
	}
	w.Chars = chars
	return w
}

// CaseFolder returns a lower-casing function following the rules of
// language tag. It is the folding dictionaries use for their string API.
//
// The returned function is not safe for concurrent use.
func CaseFolder(tag language.Tag) func(rune) rune {
	return texhyph.CaseFolder(tag)
}
