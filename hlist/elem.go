package hlist

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Elem is an element of an hlist. The set of element types is closed.
type Elem interface {
	isElem()
}

// Char is a single character set in a font.
type Char struct {
	Code  rune
	Font  Font
	Lang  language.Tag
	Width Dimen
}

// Ligature is a glyph replacing two or more characters. Components holds
// the original characters, in order, for later decomposition.
type Ligature struct {
	Code       rune
	Font       Font
	Lang       language.Tag
	Width      Dimen
	Components []*Char
}

// Discretionary is an optional break. If the line breaks here, Pre ends the
// line and Post starts the next one; otherwise NoBreak is set.
type Discretionary struct {
	Pre, Post, NoBreak List
}

// Kern is a fixed space. Implicit kerns are inserted from font information
// between adjacent glyphs; explicit kerns are user-requested and end a word.
type Kern struct {
	Amount   Dimen
	Explicit bool
}

// Mark is a zero-width decoration which does not interrupt a word.
type Mark struct {
	Name string
}

// Glue is stretchable space.
type Glue struct {
	Width, Stretch, Shrink Dimen
}

// Penalty is the cost of breaking at this position.
type Penalty struct {
	Value int
}

func (*Char) isElem()          {}
func (*Ligature) isElem()      {}
func (*Discretionary) isElem() {}
func (*Kern) isElem()          {}
func (*Mark) isElem()          {}
func (*Glue) isElem()          {}
func (*Penalty) isElem()       {}

// NewChar creates a character with its advance width taken from font.
func NewChar(r rune, font Font, lang language.Tag) *Char {
	c := &Char{Code: r, Font: font, Lang: lang}
	if font != nil {
		c.Width = font.Advance(r)
	}
	return c
}

// NewLigature creates a ligature glyph code for components, which must
// contain at least 2 characters. Font and language are taken from the first
// component.
func NewLigature(code rune, components []*Char) *Ligature {
	if len(components) < 2 {
		panic("ligature needs at least 2 components")
	}
	first := components[0]
	lig := &Ligature{
		Code:       code,
		Font:       first.Font,
		Lang:       first.Lang,
		Components: components,
	}
	if first.Font != nil {
		lig.Width = first.Font.Advance(code)
	}
	return lig
}

// Text returns the characters the ligature stands for.
func (lig *Ligature) Text() string {
	var sb strings.Builder
	for _, c := range lig.Components {
		sb.WriteRune(c.Code)
	}
	return sb.String()
}

// Width returns the natural width of an element. The width of a
// discretionary is the width of its no-break material.
func Width(e Elem) Dimen {
	switch e := e.(type) {
	case *Char:
		return e.Width
	case *Ligature:
		return e.Width
	case *Discretionary:
		return e.NoBreak.Width()
	case *Kern:
		return e.Amount
	case *Glue:
		return e.Width
	case *Mark, *Penalty:
		return 0
	}
	panic(fmt.Sprintf("unknown hlist element %T", e))
}

// String renders an element for debugging.
func String(e Elem) string {
	var sb strings.Builder
	writeElem(&sb, e)
	return sb.String()
}

func writeElem(sb *strings.Builder, e Elem) {
	switch e := e.(type) {
	case *Char:
		sb.WriteRune(e.Code)
	case *Ligature:
		sb.WriteByte('[')
		sb.WriteString(e.Text())
		sb.WriteByte(']')
	case *Discretionary:
		if e.isHyphen() {
			sb.WriteString(`\-`)
			return
		}
		fmt.Fprintf(sb, `\discretionary{%s}{%s}{%s}`, e.Pre, e.Post, e.NoBreak)
	case *Kern:
		if e.Explicit {
			fmt.Fprintf(sb, `\kern%.2fbp `, e.Amount.Points())
		}
	case *Mark:
		// invisible
	case *Glue:
		sb.WriteByte(' ')
	case *Penalty:
		fmt.Fprintf(sb, `\penalty%d `, e.Value)
	default:
		panic(fmt.Sprintf("unknown hlist element %T", e))
	}
}

// isHyphen is true for the plain "\-" discretionary.
func (d *Discretionary) isHyphen() bool {
	if len(d.Post) > 0 || len(d.NoBreak) > 0 || len(d.Pre) != 1 {
		return false
	}
	c, ok := d.Pre[0].(*Char)
	return ok && c.Code == '-'
}
