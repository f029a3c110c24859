/*
Command hyphcli is an interactive shell for exploring TeX hyphenation
dictionaries.

Usage:

	hyphcli [-patterns hyph-en-us.tex] [-lang en-US] [-left 2] [-right 3] [-trace Info]

Without -patterns, a small built-in excerpt of English patterns is loaded.
Every input line not starting with a colon is hyphenated word by word.
Commands are:

	:dump            list all patterns and exceptions
	:tree <prefix>   display the pattern trie below a prefix
	:stats           display size metrics of the pattern trie
	:margins <l> <r> set the hyphenation margins
	:help            show the list of commands
	:quit            leave the shell
*/
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/hlist"
	"github.com/npillmayer/texhyph/tex"
	"github.com/npillmayer/texhyph/wordhyph"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

//go:embed hyph-en-excerpt.tex
var builtinPatterns string

// tracer traces with key 'hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.hyphenate": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	patterns := flag.String("patterns", "", "TeX pattern file to load")
	lang := flag.String("lang", "en-US", "Language of the patterns (BCP 47)")
	left := flag.Int("left", 0, "Minimum number of letters before a hyphen (0 = dictionary default)")
	right := flag.Int("right", 0, "Minimum number of letters after a hyphen (0 = dictionary default)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)
	pterm.Info.Println("Welcome to the hyphenation CLI")
	//
	tag, err := language.Parse(*lang)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	repl, err := readline.New("hyph > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := newIntp(tag)
	intp.repl = repl
	if err := intp.loadDictionary(*patterns, *left, *right); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	lang  language.Tag
	dict  *texhyph.Dictionary
	hyph  *wordhyph.Hyphenator
	font  *hlist.FontTable
	words *segment.Segmenter
}

func newIntp(lang language.Tag) *Intp {
	words := segment.NewSegmenter(uax29.NewWordBreaker(1))
	words.BreakOnZero(true, false)
	return &Intp{
		lang:  lang,
		font:  hlist.NewFontTable("mono", 5*hlist.BP).AddStandardLigatures(),
		words: words,
	}
}

// loadDictionary loads a TeX pattern file, or the built-in patterns if
// filename is empty. Margins > 0 override the dictionary defaults.
func (intp *Intp) loadDictionary(filename string, left, right int) error {
	var r io.Reader = strings.NewReader(builtinPatterns)
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dict, err := tex.LoadLanguageDictionary(intp.lang, "", r)
	if err != nil {
		return err
	}
	if dict.Identifier == "" {
		dict.Identifier = intp.lang.String()
	}
	intp.dict = dict
	intp.setMargins(left, right)
	stats := dict.PatternTrieStats()
	pterm.Info.Printf("Loaded %q: %d patterns, %d exceptions\n", dict.Identifier,
		stats.Patterns, dict.ExceptionCount())
	return nil
}

func (intp *Intp) setMargins(left, right int) {
	if left > 0 {
		intp.dict.LeftMin = left
	}
	if right > 0 {
		intp.dict.RightMin = right
	}
	intp.hyph = wordhyph.New(wordhyph.WithDictionary(intp.lang, intp.dict))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var errUnknownCommand = errors.New("unknown command, try :help")
