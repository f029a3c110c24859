package sfntmetrics

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texhyph/hlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

func TestOpenGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.hlist")
	defer teardown()
	//
	f, err := Open(goregular.TTF, fixed.I(12))
	require.NoError(t, err)
	assert.NotEmpty(t, f.Name)
	assert.Greater(t, f.Advance('m'), f.Advance('i'), "Go Regular is proportional")
	assert.Greater(t, f.Advance('-'), hlist.Dimen(0))
	assert.Less(t, f.Advance('m'), 12*hlist.BP)
}

func TestLigatureQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.hlist")
	defer teardown()
	//
	f, err := Open(goregular.TTF, fixed.I(12))
	require.NoError(t, err)
	_, ok := f.Ligature('a', 'b')
	assert.False(t, ok)
	if lig, ok := f.Ligature('f', 'i'); ok {
		assert.Equal(t, 'ﬁ', lig)
	}
	list := hlist.FromString("office", f, language.English)
	assert.Equal(t, "office", list.Text())
	assert.Equal(t, 6, list.CharCount())
}

func TestKerningQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.hlist")
	defer teardown()
	//
	f, err := Open(goregular.TTF, fixed.I(12))
	require.NoError(t, err)
	if k, ok := f.Kerning('A', 'V'); ok {
		assert.NotZero(t, k)
	}
	_, ok := f.Kerning('\uFFFF', 'A')
	assert.False(t, ok, "unmapped glyphs are never kerned")
}

func TestOpenInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate.hlist")
	defer teardown()
	//
	_, err := Open([]byte("no font"), fixed.I(12))
	assert.Error(t, err)
}
