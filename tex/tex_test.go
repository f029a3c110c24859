package tex

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const english = `% excerpt of hyphenation patterns, TeXbook appendix H
\message{Hyphenation patterns (excerpt)}
\patterns{
.hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n
su4b3 1ty type3 4pe.
}
\hyphenation{
ta-ble
com-put-er
}
`

const german = `\message{Trennmuster (Auszug)}
\patterns{
1ch 1ge r1g ü1b 2ß1
}
`

func TestLoadDictionary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	dict, err := LoadDictionary("en-excerpt", strings.NewReader(english))
	require.NoError(t, err)
	dict.LeftMin, dict.RightMin = 2, 2
	tests := []struct {
		word string
		want string
	}{
		{word: "hyphenation", want: "hy-phen-ation"},
		{word: "table", want: "ta-ble"}, // comes from TeX exceptions
		{word: "computer", want: "com-put-er"},
		{word: "Subtype", want: "Sub-type"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dict.HyphenationString(tt.word))
	}
	assert.Equal(t, 2, dict.ExceptionCount())
}

func TestLoadDictionaryUmlauts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	dict, err := LoadDictionary("", strings.NewReader(german))
	require.NoError(t, err)
	assert.Equal(t, "Trennmuster (Auszug)", dict.Identifier)
	dict.LeftMin, dict.RightMin = 2, 2
	assert.Equal(t, "Mäd-chen", dict.HyphenationString("Mädchen"))
}

func TestLoadDictionaryMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	_, err := LoadDictionary("broken", strings.NewReader("\\patterns{\na1b 9x99\n}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9x99")
}

func TestLoadLanguageDictionary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	dict, err := LoadLanguageDictionary(language.German, "de-excerpt", strings.NewReader(german+`\hyphenation{
Bä-cker
}`))
	require.NoError(t, err)
	assert.Equal(t, language.German, dict.Lang)
	dict.LeftMin, dict.RightMin = 2, 2
	assert.Equal(t, "Bä-cker", dict.HyphenationString("Bäcker"))
	assert.Equal(t, "bä-cker", dict.HyphenationString("bäcker"))
}
