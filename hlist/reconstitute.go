package hlist

import (
	"unicode"

	"golang.org/x/text/language"
)

// Reconstitute builds glyphs from a run of characters, the way TeX
// rebuilds a word after hyphenation: characters are ligated greedily from
// left to right and implicit kerns are inserted between adjacent glyphs,
// both as the font requests it.
//
// Characters of different fonts or languages are never ligated or kerned.
// The characters are referenced, not copied, by the resulting elements.
func Reconstitute(chars []*Char) List {
	list := make(List, 0, len(chars))
	var run []*Char // characters of the glyph under construction
	var code rune   // glyph code of run
	flush := func() {
		if len(run) == 1 {
			list = append(list, run[0])
		} else if len(run) > 1 {
			list = append(list, NewLigature(code, run))
		}
	}
	for _, c := range chars {
		if len(run) > 0 {
			prev := run[0]
			if sameContext(prev, c) && c.Font != nil {
				if lig, ok := c.Font.Ligature(code, c.Code); ok {
					run = append(run, c)
					code = lig
					continue
				}
			}
			flush()
			if sameContext(prev, c) && c.Font != nil {
				if k, ok := c.Font.Kerning(code, c.Code); ok && k != 0 {
					list = append(list, &Kern{Amount: k})
				}
			}
		}
		run = []*Char{c}
		code = c.Code
	}
	flush()
	tracer().Debugf("reconstituted %d chars as %q", len(chars), list.String())
	return list
}

func sameContext(a, b *Char) bool {
	return a.Font == b.Font && a.Lang == b.Lang
}

// FromString creates an hlist for s. Space characters become glue with the
// advance of ' ' as their width, runs of other characters are reconstituted
// into ligatures and kerns.
func FromString(s string, font Font, lang language.Tag) List {
	var list List
	var run []*Char
	for _, r := range s {
		if unicode.IsSpace(r) {
			list = append(list, Reconstitute(run)...)
			run = run[:0:0]
			var w Dimen
			if font != nil {
				w = font.Advance(' ')
			}
			list = append(list, &Glue{Width: w, Stretch: w / 2, Shrink: w / 3})
			continue
		}
		run = append(run, NewChar(r, font, lang))
	}
	return append(list, Reconstitute(run)...)
}
