/*
Package sfntmetrics provides font metrics for hyphenation from OpenType and
TrueType fonts.

A Font answers the ligature and kerning queries of hlist.Font. Kerning is
read from the font's kern table. OpenType layout features are not
evaluated; ligatures are restricted to the Latin f-ligatures, which are
reported only if the font carries glyphs for their Unicode presentation
forms.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sfntmetrics

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/texhyph/hlist"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'hyphenate.hlist'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate.hlist")
}

// Font wraps a parsed SFNT font at a given size.
// It is safe for concurrent use.
type Font struct {
	Name string
	sf   *sfnt.Font
	ppem fixed.Int26_6
	mu   sync.Mutex  // guards buf
	buf  sfnt.Buffer // sfnt.Font methods are not re-entrant with a shared buffer
}

var _ hlist.Font = (*Font)(nil)

var latinLigatures = map[[2]rune]rune{
	{'f', 'f'}: 'ﬀ',
	{'f', 'i'}: 'ﬁ',
	{'f', 'l'}: 'ﬂ',
	{'ﬀ', 'i'}: 'ﬃ',
	{'ﬀ', 'l'}: 'ﬄ',
}

// Open parses font data and prepares the font for size ppem (pixels per em;
// one pixel is one big point).
func Open(data []byte, ppem fixed.Int26_6) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	f := &Font{sf: sf, ppem: ppem}
	if f.Name, err = sf.Name(&f.buf, sfnt.NameIDFull); err != nil {
		tracer().Infof("font has no full name: %v", err)
		f.Name = "?"
	}
	tracer().Debugf("opened font %s with %d glyphs", f.Name, sf.NumGlyphs())
	return f, nil
}

func (f *Font) glyph(r rune) sfnt.GlyphIndex {
	gid, err := f.sf.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return gid
}

// Ligature is part of interface hlist.Font.
func (f *Font) Ligature(a, b rune) (rune, bool) {
	lig, ok := latinLigatures[[2]rune{a, b}]
	if !ok {
		return 0, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.glyph(lig) == 0 {
		return 0, false
	}
	return lig, true
}

// Kerning is part of interface hlist.Font.
func (f *Font) Kerning(a, b rune) (hlist.Dimen, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ga, gb := f.glyph(a), f.glyph(b)
	if ga == 0 || gb == 0 {
		return 0, false
	}
	k, err := f.sf.Kern(&f.buf, ga, gb, f.ppem, font.HintingNone)
	if err != nil || k == 0 {
		return 0, false
	}
	return toDimen(k), true
}

// Advance is part of interface hlist.Font.
func (f *Font) Advance(r rune) hlist.Dimen {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.sf.GlyphAdvance(&f.buf, f.glyph(r), f.ppem, font.HintingNone)
	if err != nil {
		tracer().Debugf("no advance for %q: %v", r, err)
		return 0
	}
	return toDimen(adv)
}

func (f *Font) String() string {
	return f.Name
}

// toDimen converts 26.6 fixed point pixels to scaled big points.
func toDimen(x fixed.Int26_6) hlist.Dimen {
	return hlist.Dimen(int64(x) * int64(hlist.BP) / 64)
}
