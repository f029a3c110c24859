package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	op, err := parseCommand(":tree hy")
	require.NoError(t, err)
	assert.Equal(t, TREE, op.code)
	assert.Equal(t, []string{"hy"}, op.args)
	op, err = parseCommand("hyphenation of subtypes")
	require.NoError(t, err)
	assert.Equal(t, HYPHENATE, op.code)
	assert.Equal(t, "hyphenation of subtypes", op.text)
	_, err = parseCommand(":frobnicate")
	assert.ErrorIs(t, err, errUnknownCommand)
	_, err = parseCommand(":")
	assert.Error(t, err)
}

func TestBuiltinPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	intp := newIntp(language.AmericanEnglish)
	require.NoError(t, intp.loadDictionary("", 2, 2))
	assert.Equal(t, "English hyphenation patterns (excerpt)", intp.dict.Identifier)
	assert.Equal(t, "hy-phen-ation", intp.dict.HyphenationString("hyphenation"))
	assert.Equal(t, "ta-ble", intp.dict.HyphenationString("table"))
	assert.Equal(t, 3, intp.dict.ExceptionCount())
	assert.NotNil(t, intp.hyph.Dictionary(language.AmericanEnglish))
}

func TestSplitWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	intp := newIntp(language.English)
	assert.Equal(t, []string{"Hyphenation", "of", "subtypes", "times"},
		intp.splitWords("Hyphenation of subtypes, 42 times."))
}

func TestPatternChars(t *testing.T) {
	assert.Equal(t, []rune{-1, 'h', 'y'}, patternChars(".hy"))
	assert.Equal(t, []rune{'p', 'e', -2}, patternChars("pe."))
}
