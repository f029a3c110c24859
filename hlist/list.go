package hlist

import (
	"fmt"
	"slices"
	"strings"
)

// List is a horizontal list of elements.
type List []Elem

// Len returns the number of top-level elements.
func (l List) Len() int {
	return len(l)
}

// Width returns the natural width of the list, without breaking at any of
// its discretionaries.
func (l List) Width() Dimen {
	var w Dimen
	for _, e := range l {
		w += Width(e)
	}
	return w
}

// Text returns the characters of the list as typeset without breaking.
// Ligatures contribute their components, glue is a space.
func (l List) Text() string {
	var sb strings.Builder
	l.writeText(&sb)
	return sb.String()
}

func (l List) writeText(sb *strings.Builder) {
	for _, e := range l {
		switch e := e.(type) {
		case *Char:
			sb.WriteRune(e.Code)
		case *Ligature:
			sb.WriteString(e.Text())
		case *Discretionary:
			e.NoBreak.writeText(sb)
		case *Glue:
			sb.WriteByte(' ')
		case *Kern, *Mark, *Penalty:
		default:
			panic(fmt.Sprintf("unknown hlist element %T", e))
		}
	}
}

// CharCount returns the number of characters in the list, counting
// ligature components and the no-break material of discretionaries.
func (l List) CharCount() int {
	n := 0
	for _, e := range l {
		switch e := e.(type) {
		case *Char:
			n++
		case *Ligature:
			n += len(e.Components)
		case *Discretionary:
			n += e.NoBreak.CharCount()
		}
	}
	return n
}

// Replace replaces the elements l[i:j] with elems.
func (l *List) Replace(i, j int, elems ...Elem) {
	*l = slices.Replace(*l, i, j, elems...)
}

// String renders the list for debugging, e.g. "sub\-type".
func (l List) String() string {
	var sb strings.Builder
	for _, e := range l {
		writeElem(&sb, e)
	}
	return sb.String()
}
