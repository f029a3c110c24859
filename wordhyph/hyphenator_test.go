package wordhyph

import (
	"sync"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texhyph"
	"github.com/npillmayer/texhyph/hlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var texbookPatterns = []string{
	"su4b3", "1ty", "type3", "4pe.",
	"hy3ph", "he2n", "hena4", "hen5at", "1na", "n2at", "1tio", "2io", "o2n",
}

func dictionary(t *testing.T, name string, patterns ...string) *texhyph.Dictionary {
	t.Helper()
	tree := texhyph.NewPatternTree()
	for _, p := range patterns {
		require.NoError(t, tree.InsertString(p))
	}
	tree.Compress()
	return texhyph.NewDictionary(name, tree)
}

func TestHyphenateList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.words")
	defer teardown()
	//
	h := New(WithDictionary(language.English, dictionary(t, "en", texbookPatterns...)))
	font := testFont()
	list := hlist.FromString("Hyphenation of a subtype", font, language.English)
	n := h.HyphenateList(&list)
	assert.Equal(t, 2, n)
	assert.Equal(t, `Hy\-phen\-ation of a sub\-type`, list.String())
	assert.Equal(t, "Hyphenation of a subtype", list.Text())
}

func TestHyphenateWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.words")
	defer teardown()
	//
	h := New(WithDictionary(language.English, dictionary(t, "en", texbookPatterns...)))
	font := testFont()
	list := hlist.FromString("subtype subtype", font, language.English)
	second := Span{8, 15}
	require.True(t, h.HyphenateWord(&list, second, 2, 3))
	assert.Equal(t, `subtype sub\-type`, list.String())
	assert.False(t, h.HyphenateWord(&list, Span{0, 7}, 4, 3), "margins forbid the break")
	assert.False(t, h.HyphenateWord(&list, Span{7, 10}, 2, 3), "span does not start with a word")
	assert.False(t, h.HyphenateWord(&list, Span{0, 100}, 2, 3))
}

func TestDictionaryMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.words")
	defer teardown()
	//
	de := dictionary(t, "de", "1ch", "s1t")
	en := dictionary(t, "en", texbookPatterns...)
	h := New(WithDictionary(language.English, en), WithDictionary(language.German, de))
	assert.Same(t, de, h.Dictionary(language.MustParse("de-CH")))
	assert.Same(t, en, h.Dictionary(language.AmericanEnglish))
	assert.Nil(t, h.Dictionary(language.Japanese))
	assert.Nil(t, New().Dictionary(language.English))
	//
	font := testFont()
	list := append(hlist.FromString("subtype ", font, language.English),
		hlist.FromString("Kuchen", font, language.MustParse("de-CH"))...)
	assert.Equal(t, 2, New(WithDictionary(language.English, en), WithDictionary(language.German, de),
		WithMargins(2, 2)).HyphenateList(&list))
	assert.Equal(t, `sub\-type Ku\-chen`, list.String())
}

func TestHyphenatorOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.words")
	defer teardown()
	//
	en := dictionary(t, "en", texbookPatterns...)
	font := testFont()
	list := hlist.FromString("subtype", font, language.English)
	assert.Zero(t, New(WithDictionary(language.English, en), WithMinWordLength(8)).HyphenateList(&list))
	//
	h := New(WithDictionary(language.English, en), WithHyphenChar('\u2010'))
	require.Equal(t, 1, h.HyphenateList(&list))
	disc, ok := list[3].(*hlist.Discretionary)
	require.True(t, ok)
	assert.Equal(t, '\u2010', disc.Pre[0].(*hlist.Char).Code)
	//
	upper := func(lang language.Tag, r rune) rune { return unicode.ToUpper(r) }
	list = hlist.FromString("subtype", font, language.English)
	h = New(WithDictionary(language.English, en), WithCaseFold(upper))
	assert.Zero(t, h.HyphenateList(&list), "patterns are lower case")
}

func TestHyphenateListConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.words")
	defer teardown()
	//
	h := New(WithDictionary(language.English, dictionary(t, "en", texbookPatterns...)))
	font := testFont()
	results := make([]string, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			list := hlist.FromString("hyphenation subtype", font, language.English)
			h.HyphenateList(&list)
			results[i] = list.String()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, `hy\-phen\-ation sub\-type`, r)
	}
}

func TestStringAndListFoldingAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.words")
	defer teardown()
	//
	tr := dictionary(t, "tr", "ı1r")
	tr.Lang = language.Turkish
	tr.LeftMin, tr.RightMin = 1, 1
	h := New(WithDictionary(language.Turkish, tr))
	list := hlist.FromString("IRMAK", testFont(), language.Turkish)
	assert.Equal(t, 1, h.HyphenateList(&list))
	assert.Equal(t, `I\-RMAK`, list.String())
	assert.Equal(t, "I-RMAK", tr.HyphenationString("IRMAK"))
}
