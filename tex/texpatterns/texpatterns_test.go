package texpatterns

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texhyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `% sample patterns
%     message: sample-id
\message{Sample hyphenation patterns}
\lccode` + "`" + `\'=` + "`" + `\'
\patterns{ % TeXbook, appendix H
.hy3ph he2n hena4 hen5at
1na n2at 1tio 2io o2n % trailing comment
su4b3 1ty type3 4pe.}
\hyphenation{
ta-ble
}
`

func TestPatternReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	r := NewPatternReader(strings.NewReader(`\message{test-id}
\patterns{
fü1r
}`))
	text, tokens, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "fü1r", text)
	assert.Equal(t, []texhyph.Token{texhyph.Letter('f'), texhyph.Letter('ü'),
		texhyph.Digit(1), texhyph.Letter('r')}, tokens)
	assert.Equal(t, "test-id", r.Identifier())
	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestPatternReaderBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	r := NewPatternReader(strings.NewReader(sample))
	var texts []string
	for {
		text, _, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		texts = append(texts, text)
	}
	assert.Equal(t, []string{".hy3ph", "he2n", "hena4", "hen5at", "1na", "n2at", "1tio", "2io",
		"o2n", "su4b3", "1ty", "type3", "4pe."}, texts)
	assert.Equal(t, "Sample hyphenation patterns", r.Identifier())
}

func TestUnclosedPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	r := NewPatternReader(strings.NewReader("\\patterns{\na1b\n"))
	_, _, err := r.Next()
	require.NoError(t, err)
	_, _, err = r.Next()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

func TestLoadPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	dict, err := LoadPatterns("sample", strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "hy-phen-ation", dict.HyphenationString("hyphenation"))
	assert.Equal(t, "sub-type", dict.HyphenationString("subtype"))
	assert.Equal(t, "table", dict.HyphenationString("table"), "exceptions are not loaded")
	assert.Equal(t, 13, dict.PatternTrieStats().Patterns)
	//
	dict, err = LoadPatterns("", strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "Sample hyphenation patterns", dict.Identifier)
}

func TestLoadMalformedPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	_, err := LoadPatterns("broken", strings.NewReader("\\patterns{\na1b hy3ph\nx12y o2n\n}"))
	require.Error(t, err)
	var perr *texhyph.PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "x12y", perr.Pattern)
	assert.Equal(t, 3, perr.Ordinal)
	assert.True(t, errors.Is(err, texhyph.ErrMalformedPattern))
}
