package hlist

// Font is the capability to query font metrics needed to rebuild glyph
// sequences. Glyphs are identified by code points; a ligature glyph is
// identified by the code point it is mapped to (e.g., U+FB02 for "fl").
type Font interface {
	// Ligature returns the ligature formed by glyphs a and b, if any.
	// a may itself be a ligature.
	Ligature(a, b rune) (rune, bool)
	// Kerning returns the kern between glyphs a and b, if any.
	Kerning(a, b rune) (Dimen, bool)
	// Advance returns the advance width of a glyph.
	Advance(r rune) Dimen
}

type glyphPair struct {
	a, b rune
}

// FontTable is a Font driven by explicit tables, much like the lig/kern
// program of a TeX font metric file.
type FontTable struct {
	Name           string
	DefaultAdvance Dimen // advance of glyphs without an entry
	ligatures      map[glyphPair]rune
	kerns          map[glyphPair]Dimen
	advances       map[rune]Dimen
}

var _ Font = (*FontTable)(nil)

// NewFontTable creates an empty font table.
func NewFontTable(name string, defaultAdvance Dimen) *FontTable {
	return &FontTable{
		Name:           name,
		DefaultAdvance: defaultAdvance,
		ligatures:      make(map[glyphPair]rune),
		kerns:          make(map[glyphPair]Dimen),
		advances:       make(map[rune]Dimen),
	}
}

// AddLigature declares that glyphs a and b are replaced by lig.
func (f *FontTable) AddLigature(a, b, lig rune) *FontTable {
	f.ligatures[glyphPair{a, b}] = lig
	return f
}

// AddKern declares a kern between glyphs a and b.
func (f *FontTable) AddKern(a, b rune, kern Dimen) *FontTable {
	f.kerns[glyphPair{a, b}] = kern
	return f
}

// SetAdvance sets the advance width of glyph r.
func (f *FontTable) SetAdvance(r rune, w Dimen) *FontTable {
	f.advances[r] = w
	return f
}

// AddStandardLigatures adds the Latin f-ligatures ff, fi, fl, ffi and ffl,
// using their Unicode presentation forms as glyph codes.
func (f *FontTable) AddStandardLigatures() *FontTable {
	return f.AddLigature('f', 'f', 'ﬀ').
		AddLigature('f', 'i', 'ﬁ').
		AddLigature('f', 'l', 'ﬂ').
		AddLigature('ﬀ', 'i', 'ﬃ').
		AddLigature('ﬀ', 'l', 'ﬄ')
}

// Ligature is part of interface Font.
func (f *FontTable) Ligature(a, b rune) (rune, bool) {
	lig, ok := f.ligatures[glyphPair{a, b}]
	return lig, ok
}

// Kerning is part of interface Font.
func (f *FontTable) Kerning(a, b rune) (Dimen, bool) {
	k, ok := f.kerns[glyphPair{a, b}]
	return k, ok
}

// Advance is part of interface Font.
func (f *FontTable) Advance(r rune) Dimen {
	if w, ok := f.advances[r]; ok {
		return w
	}
	return f.DefaultAdvance
}

func (f *FontTable) String() string {
	return f.Name
}
