/*
Package hlist implements horizontal lists of typeset elements.

An hlist is what a line breaker consumes: characters already mapped to a
font, ligatures formed from them, implicit and explicit kerns, glue,
penalties and discretionary breaks. Hyphenation works on such lists:
package wordhyph collects words from an hlist and splices discretionaries
into it.

Elements form a closed set. Clients switch over the concrete types

	*Char  *Ligature  *Discretionary  *Kern  *Mark  *Glue  *Penalty

and may rely on no other type ever implementing Elem.

Font information enters through the Font interface, a narrow capability
for ligature and kerning queries. FontTable is a map-driven implementation,
package hlist/sfntmetrics reads the information from OpenType fonts.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package hlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyphenate.hlist'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate.hlist")
}
