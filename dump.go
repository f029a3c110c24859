package texhyph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DumpPatterns writes all patterns of the tree to w in TeX pattern notation,
// one pattern per line, sorted by letters. It is meant for debugging.
func (t *PatternTree) DumpPatterns(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.Walk(func(chars []rune, code Code) bool {
		_, err := fmt.Fprintln(bw, patternString(chars, code))
		return err == nil
	})
	return bw.Flush()
}

// DumpPatterns writes a diagnostic listing of the dictionary: header,
// patterns, and exceptions in \hyphenation notation.
func (dict *Dictionary) DumpPatterns(w io.Writer) error {
	bw := bufio.NewWriter(w)
	stats := dict.PatternTrieStats()
	fmt.Fprintf(bw, "%% %s: %d patterns, %d nodes, %d codes, margins %d/%d\n",
		dict.Identifier, stats.Patterns, stats.Nodes, stats.Codes, dict.LeftMin, dict.RightMin)
	fmt.Fprintln(bw, `\patterns{`)
	if err := dict.tree.DumpPatterns(bw); err != nil {
		return err
	}
	fmt.Fprintln(bw, "}")
	if dict.ExceptionCount() > 0 {
		fmt.Fprintln(bw, `\hyphenation{`)
		words := dict.exceptions.Keys()
		sort.Strings(words)
		for _, word := range words {
			bp, _ := dict.exception([]rune(word))
			fmt.Fprintln(bw, strings.Join(bp.Split([]rune(word)), "-"))
		}
		fmt.Fprintln(bw, "}")
	}
	// bufio.Writer keeps the first write error and reports it here
	return bw.Flush()
}
