package texhyph

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type TreeTestEnviron struct {
	suite.Suite
	words []string
}

// listen for 'go test' command --> run test methods
func TestPatternTreeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	suite.Run(t, new(TreeTestEnviron))
}

// run once, before test suite methods
func (env *TreeTestEnviron) SetupSuite() {
	tracing.Select("hyphenate").SetTraceLevel(tracing.LevelInfo)
	env.words = []string{"hyphenation", "subtype", "supertype", "nation", "type",
		"henna", "phenotype", "ion", "a", ""}
}

func (env *TreeTestEnviron) tree(patterns ...string) *PatternTree {
	tree := NewPatternTree()
	for _, p := range patterns {
		env.Require().NoError(tree.InsertString(p), "pattern %q", p)
	}
	return tree
}

// lookups collects the lookup results for every suffix of every test word.
func (env *TreeTestEnviron) lookups(tree *PatternTree) []string {
	var results []string
	for _, w := range env.words {
		ext := append(append([]rune{WordStart}, []rune(w)...), WordEnd)
		for i := range ext {
			results = append(results, tree.Lookup(ext, i).String())
		}
	}
	return results
}

// --- Tests -----------------------------------------------------------------

func (env *TreeTestEnviron) TestParsePattern() {
	tokens, err := ParsePattern("ad5er.")
	env.Require().NoError(err)
	chars, code, perr := compilePattern(tokens)
	env.Require().Nil(perr)
	env.Equal([]rune{'a', 'd', 'e', 'r', WordEnd}, chars)
	env.Equal(Code{0, 0, 5, 0, 0, 0}, code)
	env.Equal("ad5er.", TokensString(tokens))
	//
	tokens, err = ParsePattern(".hy3ph")
	env.Require().NoError(err)
	chars, code, _ = compilePattern(tokens)
	env.Equal(WordStart, chars[0])
	env.Equal("000300", code.String())
}

func (env *TreeTestEnviron) TestMalformedPatterns() {
	for _, p := range []string{"a12b", "a.b", "a b", "", "1", "..", "ab.c", "a5#"} {
		_, err := ParsePattern(p)
		env.Error(err, "expected %q to be rejected", p)
		env.True(errors.Is(err, ErrMalformedPattern), "expected malformed error for %q", p)
	}
	tree := NewPatternTree()
	err := tree.Insert([]Token{Letter('a'), Digit(12), Letter('b')})
	env.True(errors.Is(err, ErrMalformedPattern), "weights > 9 must be rejected")
	err = tree.Insert([]Token{Digit(1), Digit(2), Letter('b')})
	env.True(errors.Is(err, ErrMalformedPattern), "consecutive digits must be rejected")
	env.Equal(0, tree.PatternCount())
	env.Equal(1, tree.Stats().Nodes, "rejected patterns must not leave nodes behind")
}

func (env *TreeTestEnviron) TestLookupSuperimposesPrefixes() {
	tree := env.tree("a1", "ab2c", "2abcd")
	chars := []rune("abcde")
	env.Equal(Code{2, 1, 2, 0, 0}, tree.Lookup(chars, 0))
	env.Equal(Code{0}, tree.Lookup(chars, 1), "no pattern starts with b")
	env.Equal(Code{0, 1}, tree.Lookup([]rune("ax"), 0), "longest matching pattern is a1")
}

func (env *TreeTestEnviron) TestInsertionOrderIndependence() {
	reference := env.lookups(env.tree(texbookPatterns...))
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 20; i++ {
		patterns := append([]string(nil), texbookPatterns...)
		rnd.Shuffle(len(patterns), func(i, j int) { patterns[i], patterns[j] = patterns[j], patterns[i] })
		env.Equal(reference, env.lookups(env.tree(patterns...)), "order %v", patterns)
	}
}

func (env *TreeTestEnviron) TestDuplicateInsertion() {
	tree := env.tree(texbookPatterns...)
	size, count := tree.SerializedSize(), tree.PatternCount()
	env.NoError(tree.InsertString("hy3ph"))
	env.Equal(size, tree.SerializedSize(), "identical duplicate must not change the tree")
	env.Equal(count, tree.PatternCount())
	// superimposed duplicate
	env.NoError(tree.InsertString("h1y2ph"))
	code, ok := tree.Pattern([]rune("hyph"))
	env.True(ok)
	env.Equal(Code{0, 1, 3, 0, 0}, code)
	env.Equal(count, tree.PatternCount())
}

func (env *TreeTestEnviron) TestRejectDuplicates() {
	tree := NewPatternTree()
	tree.Duplicates = RejectDuplicates
	env.NoError(tree.InsertString("a1b"))
	env.NoError(tree.InsertString("a1b"), "identical duplicates are accepted")
	err := tree.InsertString("a3b")
	env.True(errors.Is(err, ErrDuplicateHyphenation))
	code, _ := tree.Pattern([]rune("ab"))
	env.Equal(Code{0, 1, 0}, code, "rejected duplicate must not alter the tree")
}

func (env *TreeTestEnviron) TestCompressionKeepsLookups() {
	tree := env.tree(texbookPatterns...)
	before := env.lookups(tree)
	uncompressed := tree.SerializedSize()
	tree.Compress()
	env.True(tree.Compressed())
	env.Equal(before, env.lookups(tree))
	env.Less(tree.SerializedSize(), uncompressed)
}

func (env *TreeTestEnviron) TestCompressTwice() {
	tree := env.tree(texbookPatterns...)
	tree.Compress()
	once := tree.SerializedSize()
	stats := tree.Stats()
	tree.Compress()
	env.Equal(once, tree.SerializedSize())
	env.Equal(stats, tree.Stats())
}

func (env *TreeTestEnviron) TestImmutableAfterCompression() {
	tree := env.tree("a1b")
	tree.Compress()
	err := tree.InsertString("c1d")
	env.Require().Error(err)
	env.True(errors.Is(err, ErrImmutableTree))
	var perr *PatternError
	env.Require().True(errors.As(err, &perr))
	env.Equal(ImmutableTree, perr.Kind)
	env.Equal(1, tree.PatternCount())
}

func (env *TreeTestEnviron) TestLookupDoesNotAllocate() {
	tree := env.tree(texbookPatterns...)
	ext := []rune{WordStart, 'h', 'y', 'p', 'h', 'e', 'n', WordEnd}
	allocs := testing.AllocsPerRun(100, func() {
		for i := range ext {
			_ = tree.Lookup(ext, i)
		}
	})
	env.Zero(allocs)
	tree.Compress()
	allocs = testing.AllocsPerRun(100, func() {
		for i := range ext {
			_ = tree.Lookup(ext, i)
		}
	})
	env.Zero(allocs)
}

func (env *TreeTestEnviron) TestSerialization() {
	tree := env.tree(texbookPatterns...)
	tree.Compress()
	var buf bytes.Buffer
	n, err := tree.WriteTo(&buf)
	env.Require().NoError(err)
	env.Equal(int64(buf.Len()), n)
	copied, err := ReadPatternTree(&buf)
	env.Require().NoError(err)
	env.True(copied.Compressed())
	env.Equal(tree.PatternCount(), copied.PatternCount())
	env.Equal(env.lookups(tree), env.lookups(copied))
	//
	_, err = ReadPatternTree(bytes.NewReader([]byte("XXXX")))
	env.Error(err)
}

func (env *TreeTestEnviron) TestWalkAndVisit() {
	tree := env.tree("4pe.", "1ty", ".hy3ph")
	var patterns []string
	tree.Walk(func(chars []rune, code Code) bool {
		patterns = append(patterns, patternString(chars, code))
		return true
	})
	env.Equal([]string{".hy3ph", "4pe.", "1ty"}, patterns)
	depths := 0
	ok := tree.Visit([]rune("p"), func(depth int, char rune, code Code) {
		depths += depth
		if char == WordEnd {
			env.Equal(Code{4, 0, 0, 0}, code)
		}
	})
	env.True(ok)
	env.Equal(1+2, depths, "below 'p' there are 'e' (depth 1) and END (depth 2)")
	env.False(tree.Visit([]rune("q"), func(int, rune, Code) {}))
}
