package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/hlist"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Op is a parsed input line.
type Op struct {
	code int
	args []string
	text string // input text for HYPHENATE
}

const (
	QUIT int = iota
	HELP
	HYPHENATE
	DUMP
	TREE
	STATS
	MARGINS
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"dump":    DUMP,
	"tree":    TREE,
	"stats":   STATS,
	"margins": MARGINS,
}

// parseCommand interprets a line either as a command (":tree hy") or as
// text to hyphenate.
func parseCommand(line string) (*Op, error) {
	if !strings.HasPrefix(line, ":") {
		return &Op{code: HYPHENATE, text: line}, nil
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return nil, errUnknownCommand
	}
	code, ok := opMap[strings.ToLower(fields[0])]
	if !ok {
		return nil, errUnknownCommand
	}
	tracer().Debugf("parsed command: %v", fields)
	return &Op{code: code, args: fields[1:]}, nil
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:      quitOp,
	HELP:      helpOp,
	HYPHENATE: hyphenateOp,
	DUMP:      dumpOp,
	TREE:      treeOp,
	STATS:     statsOp,
	MARGINS:   marginsOp,
}

func (intp *Intp) execute(op *Op) (stop bool, err error) {
	f, ok := commandFn[op.code]
	if !ok {
		return false, fmt.Errorf("unknown command code: %d", op.code)
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (bool, error) {
	return true, nil
}

func helpOp(intp *Intp, op *Op) (bool, error) {
	data := [][]string{
		{"Command", "Description"},
		{"<text>", "hyphenate all words of text"},
		{":dump", "list patterns and exceptions"},
		{":tree <prefix>", "display the pattern trie below prefix"},
		{":stats", "display size metrics of the pattern trie"},
		{":margins <l> <r>", "set the minimum letters before/after a hyphen"},
		{":quit", "leave the shell"},
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// hyphenateOp hyphenates each word of the input on its own, then runs the
// input through the hlist hyphenator to show the discretionaries.
func hyphenateOp(intp *Intp, op *Op) (bool, error) {
	data := [][]string{{"Word", "Hyphenation", "Breaks"}}
	for _, word := range intp.splitWords(op.text) {
		bp := intp.dict.Breakpoints(intp.dict.Fold(word), intp.dict.LeftMin, intp.dict.RightMin)
		data = append(data, []string{word, intp.dict.HyphenationString(word), bp.String()})
	}
	if len(data) == 1 {
		pterm.Info.Println("no words in input")
		return false, nil
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return false, err
	}
	list := hlist.FromString(op.text, intp.font, intp.lang)
	n := intp.hyph.HyphenateList(&list)
	pterm.Info.Printf("%d word(s) hyphenated: %s\n", n, list.String())
	return false, nil
}

// splitWords returns the UAX #29 word segments of text which contain at
// least one letter.
func (intp *Intp) splitWords(text string) []string {
	var words []string
	intp.words.Init(strings.NewReader(text))
	for intp.words.Next() {
		segment := intp.words.Text()
		if strings.IndexFunc(segment, unicode.IsLetter) >= 0 {
			words = append(words, segment)
		}
	}
	return words
}

func dumpOp(intp *Intp, op *Op) (bool, error) {
	return false, intp.dict.DumpPatterns(os.Stdout)
}

func treeOp(intp *Intp, op *Op) (bool, error) {
	var prefix []rune
	if len(op.args) > 0 {
		prefix = patternChars(op.args[0])
	}
	var items pterm.LeveledList
	ok := intp.dict.Tree().Visit(prefix, func(depth int, char rune, code texhyph.Code) {
		items = append(items, pterm.LeveledListItem{
			Level: depth - 1,
			Text:  nodeLabel(char, code),
		})
	})
	if !ok {
		return false, fmt.Errorf("no pattern starts with %q", op.args[0])
	}
	if len(items) == 0 {
		pterm.Info.Println("no patterns below prefix")
		return false, nil
	}
	root := putils.TreeFromLeveledList(items)
	root.Text = "[" + op.argOr(0, "") + "]"
	return false, pterm.DefaultTree.WithRoot(root).Render()
}

func (op *Op) argOr(i int, def string) string {
	if i < len(op.args) {
		return op.args[i]
	}
	return def
}

// patternChars maps a prefix in pattern notation to trie characters,
// translating '.' to the word boundaries.
func patternChars(prefix string) []rune {
	chars := []rune(prefix)
	for i, r := range chars {
		if r == texhyph.BoundaryChar {
			if i == 0 {
				chars[i] = texhyph.WordStart
			} else {
				chars[i] = texhyph.WordEnd
			}
		}
	}
	return chars
}

func nodeLabel(char rune, code texhyph.Code) string {
	label := string(char)
	if char == texhyph.WordStart || char == texhyph.WordEnd {
		label = string(texhyph.BoundaryChar)
	}
	if code != nil {
		label += "  " + code.String()
	}
	return label
}

func statsOp(intp *Intp, op *Op) (bool, error) {
	stats := intp.dict.PatternTrieStats()
	data := [][]string{
		{"Metric", "Value"},
		{"dictionary", intp.dict.Identifier},
		{"patterns", strconv.Itoa(stats.Patterns)},
		{"exceptions", strconv.Itoa(intp.dict.ExceptionCount())},
		{"trie nodes", strconv.Itoa(stats.Nodes)},
		{"distinct codes", strconv.Itoa(stats.Codes)},
		{"compressed", strconv.FormatBool(stats.Compressed)},
		{"double-array slots", strconv.Itoa(stats.FrozenSlots)},
		{"fill ratio", fmt.Sprintf("%.1f%%", 100*stats.FillRatio())},
		{"margins", fmt.Sprintf("%d/%d", intp.dict.LeftMin, intp.dict.RightMin)},
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func marginsOp(intp *Intp, op *Op) (bool, error) {
	if len(op.args) != 2 {
		return false, fmt.Errorf("usage: :margins <left> <right>")
	}
	left, err := strconv.Atoi(op.args[0])
	if err != nil {
		return false, err
	}
	right, err := strconv.Atoi(op.args[1])
	if err != nil {
		return false, err
	}
	if left < 1 || right < 1 {
		return false, fmt.Errorf("margins must be at least 1")
	}
	intp.setMargins(left, right)
	pterm.Info.Printf("margins set to %d/%d\n", left, right)
	return false, nil
}
