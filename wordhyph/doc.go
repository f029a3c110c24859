/*
Package wordhyph hyphenates words inside hlists.

Hyphenation of an hlist runs in three steps:

	Collect       extract a word from the list, flattening ligatures
	Breakpoints   find legal hyphenation points with a texhyph.Dictionary
	InsertBreaks  splice discretionaries into the list

A Hyphenator bundles these steps for a set of per-language dictionaries.
The elements of the list are edited in place; the characters of the list
are never changed, normalization (case folding) is applied to a copy of the
word used for pattern matching only.

Hyphenators are read-only after construction and may hyphenate different
lists concurrently. A single list must not be edited concurrently.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package wordhyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyphenate.words'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate.words")
}

// assertThat panics with msg if an internal invariant does not hold.
func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
