package wordhyph

import (
	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/hlist"
)

// edit replaces the list elements [from, to) by elems.
type edit struct {
	from, to int
	elems    hlist.List
}

// InsertBreaks inserts a discretionary at every gap k of the word in span
// for which bp[k] is set. bp must have been computed for the word collected
// at span.Start (see Collect). It returns true if at least one
// discretionary has been inserted.
//
// The pre-break material of a discretionary is a copy of hyphen, possibly
// ligated or kerned with the character in front of it. Post-break material
// is empty, no-break material is whatever occupied the gap before. A
// ligature straddling a break is decomposed; only the first break inside a
// ligature is honored. Breaks next to characters inside a pre-existing
// discretionary, and breaks at gaps already holding one, are ignored.
//
// All edits are planned before the list is changed. If the word found at
// span.Start does not fit bp, the list is left unchanged.
func InsertBreaks(list *hlist.List, span Span, bp texhyph.Breakpoints, hyphen *hlist.Char) bool {
	if list == nil || hyphen == nil || !bp.Any() {
		return false
	}
	if span.Start < 0 || span.End > len(*list) || span.Start >= span.End {
		return false
	}
	ctx, ok := letterContext((*list)[span.Start])
	if !ok {
		tracer().Errorf("cannot insert breaks: no word at position %d", span.Start)
		return false
	}
	word, refs := collectFrom((*list)[:span.End], span.Start, ctx)
	if len(bp) != len(refs)+1 {
		tracer().Errorf("cannot insert breaks: word %q does not match %s", word.String(), bp)
		return false
	}
	edits := planEdits(*list, refs, bp, hyphen)
	for i := len(edits) - 1; i >= 0; i-- { // back to front keeps indices valid
		e := edits[i]
		list.Replace(e.from, e.to, e.elems...)
	}
	if len(edits) > 0 {
		tracer().Debugf("hyphenated %q: %s", word.String(), (*list)[span.Start:span.End+countGrowth(edits)])
	}
	return len(edits) > 0
}

func countGrowth(edits []edit) int {
	n := 0
	for _, e := range edits {
		n += len(e.elems) - (e.to - e.from)
	}
	return n
}

// planEdits creates the edits for all selected gaps, in increasing order
// of list position. Edits never overlap.
func planEdits(list hlist.List, refs []charRef, bp texhyph.Breakpoints, hyphen *hlist.Char) []edit {
	var edits []edit
	split := make(map[int]hlist.List) // right parts of ligatures already split
	for k := 1; k < len(refs); k++ {
		if !bp[k] {
			continue
		}
		left, right := refs[k-1], refs[k]
		if left.inDisc || right.inDisc {
			tracer().Debugf("break at %d next to an existing discretionary ignored", k)
			continue
		}
		if left.elem == right.elem { // inside a ligature
			if _, done := split[left.elem]; done {
				continue
			}
			lig, ok := list[left.elem].(*hlist.Ligature)
			assertThat(ok, "characters sharing an element must come from a ligature")
			ed, rightPart := splitLigature(left.elem, lig, right.comp, hyphen)
			split[left.elem] = rightPart
			edits = append(edits, ed)
			continue
		}
		if hasDiscretionary(list[left.elem+1 : right.elem]) {
			tracer().Debugf("gap %d already carries a discretionary", k)
			continue
		}
		if rightPart, done := split[left.elem]; done {
			// the element before the gap is being replaced; kern against
			// the last glyph of its new right part and leave it in place
			prev := rightPart[len(rightPart)-1]
			edits = append(edits, gapEdit(list, left.elem, right.elem, prev, false, hyphen))
			continue
		}
		edits = append(edits, gapEdit(list, left.elem, right.elem, list[left.elem], true, hyphen))
	}
	return edits
}

func hasDiscretionary(gap hlist.List) bool {
	for _, e := range gap {
		if _, ok := e.(*hlist.Discretionary); ok {
			return true
		}
	}
	return false
}

// gapEdit creates a discretionary between the top-level elements at
// positions left and right. Implicit kerns in between move into the
// no-break material, marks stay in the list after the discretionary.
// prev is the glyph in front of the gap; if movable, it may be pulled into
// the discretionary to form a ligature with the hyphen.
func gapEdit(list hlist.List, left, right int, prev hlist.Elem, movable bool, hyphen *hlist.Char) edit {
	var kerns, marks hlist.List
	for _, e := range list[left+1 : right] {
		if _, ok := e.(*hlist.Mark); ok {
			marks = append(marks, e)
		} else {
			kerns = append(kerns, e)
		}
	}
	ed := edit{from: left + 1, to: right}
	disc := &hlist.Discretionary{NoBreak: kerns}
	pre, moved := breakMaterial(prev, movable, hyphen)
	disc.Pre = pre
	if moved {
		ed.from = left
		disc.NoBreak = append(hlist.List{prev}, kerns...)
	}
	ed.elems = append(hlist.List{disc}, marks...)
	return ed
}

// breakMaterial returns the pre-break material for a break after glyph
// prev. If movable and the font ligates prev with the hyphen, the ligature
// replaces prev and moved is true. Otherwise the hyphen is preceded by a
// font kern against prev, if any.
func breakMaterial(prev hlist.Elem, movable bool, hyphen *hlist.Char) (pre hlist.List, moved bool) {
	switch p := prev.(type) {
	case *hlist.Char:
		if movable {
			if lig, ok := hyphenLigature(p.Font, p.Code, []*hlist.Char{p}, hyphen); ok {
				return hlist.List{lig}, true
			}
		}
		return preBreak(p.Font, p.Code, hyphen), false
	case *hlist.Ligature:
		if movable {
			if lig, ok := hyphenLigature(p.Font, p.Code, p.Components, hyphen); ok {
				return hlist.List{lig}, true
			}
		}
		return preBreak(p.Font, p.Code, hyphen), false
	}
	return hlist.List{copyChar(hyphen)}, false
}

// splitLigature decomposes lig at list position at into the ligature of
// components [0,k), a discretionary and the ligature of components [k,n).
// It returns the edit and the reconstituted right part.
func splitLigature(at int, lig *hlist.Ligature, k int, hyphen *hlist.Char) (edit, hlist.List) {
	leftPart := hlist.Reconstitute(lig.Components[:k])
	rightPart := hlist.Reconstitute(lig.Components[k:])
	disc := &hlist.Discretionary{}
	last := len(leftPart) - 1
	pre, moved := breakMaterial(leftPart[last], true, hyphen)
	disc.Pre = pre
	if moved {
		// move the glyph together with the kerns in front of it
		from := last
		for from > 0 {
			if _, isKern := leftPart[from-1].(*hlist.Kern); !isKern {
				break
			}
			from--
		}
		disc.NoBreak = append(hlist.List{}, leftPart[from:]...)
		leftPart = leftPart[:from]
	}
	elems := make(hlist.List, 0, len(leftPart)+1+len(rightPart))
	elems = append(elems, leftPart...)
	elems = append(elems, disc)
	elems = append(elems, rightPart...)
	tracer().Debugf("split ligature %s into %s", hlist.String(lig), elems)
	return edit{from: at, to: at + 1, elems: elems}, rightPart
}

// hyphenLigature returns a ligature of a glyph with code and the hyphen,
// if font has one. components are the characters the glyph stands for.
func hyphenLigature(font hlist.Font, code rune, components []*hlist.Char, hyphen *hlist.Char) (*hlist.Ligature, bool) {
	if font == nil {
		return nil, false
	}
	lcode, ok := font.Ligature(code, hyphen.Code)
	if !ok {
		return nil, false
	}
	comps := make([]*hlist.Char, 0, len(components)+1)
	for _, c := range components {
		comps = append(comps, copyChar(c))
	}
	comps = append(comps, copyChar(hyphen))
	return hlist.NewLigature(lcode, comps), true
}

// preBreak returns the hyphen, preceded by a kern against glyph prev if the
// font requests one.
func preBreak(font hlist.Font, prev rune, hyphen *hlist.Char) hlist.List {
	h := copyChar(hyphen)
	if font != nil {
		if k, ok := font.Kerning(prev, hyphen.Code); ok && k != 0 {
			return hlist.List{&hlist.Kern{Amount: k}, h}
		}
	}
	return hlist.List{h}
}

func copyChar(c *hlist.Char) *hlist.Char {
	cc := *c
	return &cc
}
