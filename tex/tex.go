/*
Package tex loads hyphenation dictionaries from TeX pattern files.

Sub-package texpatterns reads \patterns{…} blocks, sub-package
texexceptions reads \hyphenation{…} blocks.
*/
package tex

import (
	"bytes"
	"io"

	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/tex/texexceptions"
	"github.com/npillmayer/texhyph/tex/texpatterns"
	"golang.org/x/text/language"
)

// LoadDictionary loads a pattern dictionary and an exception list in TeX format.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern-files.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	dict, err := tex.LoadDictionary("en-us", f)
//
// This will load the patterns and exceptions temporarily into memory.
// If name is empty, the \message{…} of the pattern file names the dictionary.
func LoadDictionary(name string, reader io.Reader) (*texhyph.Dictionary, error) {
	return LoadLanguageDictionary(language.Und, name, reader)
}

// LoadLanguageDictionary is LoadDictionary for a dictionary of language
// lang, which selects the case folding rules for words and exceptions.
func LoadLanguageDictionary(lang language.Tag, name string, reader io.Reader) (*texhyph.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	dict, err := texpatterns.LoadPatterns(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	dict.Lang = lang
	err = texexceptions.LoadExceptions(dict, bytes.NewReader(data))
	return dict, err
}
