package texexceptions

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texhyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	r := NewReader(strings.NewReader(`\patterns{
a1b ta1b
}
\hyphenation{ % exceptions
ta-ble
schön-heit pro-ject}`))
	word, positions, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "table", word)
	assert.Equal(t, []int{0, 0, 1, 0, 0}, positions)
	word, positions, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "schönheit", word)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 0, 0, 0}, positions)
	word, _, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "project", word)
	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestUnclosedBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	r := NewReader(strings.NewReader("\\hyphenation{\nta-ble\n"))
	_, _, err := r.Next()
	require.NoError(t, err)
	_, _, err = r.Next()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

type emptyPatternReader struct{}

func (r emptyPatternReader) Next() (string, []texhyph.Token, error) {
	return "", nil, io.EOF
}

func TestUnicodeExceptionSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	dict, err := texhyph.LoadPatterns("unicode-test", emptyPatternReader{})
	require.NoError(t, err)
	dict.LeftMin, dict.RightMin = 2, 2
	require.NoError(t, LoadExceptions(dict, strings.NewReader(`\hyphenation{
füh-rung
schön-heit
}`)))
	assert.Equal(t, "füh-rung", dict.HyphenationString("führung"))
	assert.Equal(t, "schön-heit", dict.HyphenationString("schönheit"))
	assert.Equal(t, 2, dict.ExceptionCount())
}
