/*
Package texhyph implements TeX-compatible, pattern-based hyphenation.

It is based on the algorithm described by Frank Liang
(F.M.Liang http://www.tug.org/docs/liang/). Patterns are loaded once into a
pattern tree, a trie keyed by the characters of a pattern (including the
word boundary sentinels), which maps every pattern to a vector of
hyphenation weights. Hyphenating a word superimposes the weights of all
patterns matching anywhere inside the word; odd weights mark legal
hyphenation points, even weights suppress them.

A pattern tree may be compressed after loading. Compression shares identical
weight vectors and freezes the tree into a double-array trie
(package dat); it is irreversible.

Sub-packages bring hyphenation to node lists:

	hlist       typeset elements (chars, ligatures, discretionaries, …)
	wordhyph    collects words from node lists and splices in discretionaries
	tex         adapters for TeX pattern files

Further Reading

	https://tug.org/docs/liang/
	https://www.tug.org/TUGboat/tb27-1/tb86nemeth.pdf
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package texhyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate")
}

// assertThat panics with msg if an internal invariant does not hold.
func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
