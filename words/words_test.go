package words_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordfp"
	"github.com/npillmayer/wordfp/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = [][]string{
	nil,
	{},
	{"x", "y", "x"},
	{"", "a", ""},
	{"the", "fox", "and", "the", "dog", "and", "the", "cat"},
	{"Apple", "apple", "APPLE", "apple"},
	{"über", "uber", "straße", "ß", "日本", "go"},
	strings.Fields("A man a plan a canal Panama level noon racecar hello"),
}

func randomWords(rnd *rand.Rand, n int) []string {
	alphabet := []rune("abcAB")
	wl := make([]string, n)
	for i := range wl {
		w := make([]rune, rnd.Intn(5))
		for j := range w {
			w[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		wl[i] = string(w)
	}
	return wl
}

func allSamples() [][]string {
	rnd := rand.New(rand.NewSource(99))
	all := append([][]string{}, samples...)
	for i := 0; i < 20; i++ {
		all = append(all, randomWords(rnd, rnd.Intn(60)))
	}
	return all
}

// --- Counting words --------------------------------------------------------

func TestCountWords(t *testing.T) {
	freq := words.CountWords([]string{"x", "y", "x"})
	assert.Equal(t, words.Frequencies{"x": 2, "y": 1}, freq)
	assert.Equal(t, 3, freq.Total())
	assert.Equal(t, []string{"x", "y"}, freq.Words())
	assert.Equal(t, 2, freq.Lookup("x").WithDefault(0))
	assert.True(t, freq.Lookup("z").IsNothing())
}

func TestCountWordsIsCaseSensitive(t *testing.T) {
	freq := words.CountWords([]string{"Apple", "apple", "APPLE", "apple"})
	assert.Len(t, freq, 3)
	assert.Equal(t, 2, freq["apple"])
}

// wordCounter counts words in repeated calls, then hands out its counts.
type wordCounter struct {
	counts words.Frequencies
}

func (wc *wordCounter) count(word string) {
	if wc.counts == nil {
		wc.counts = make(words.Frequencies)
	}
	wc.counts[word] = wc.counts[word] + 1
}

func TestCountWordsIdiomsAgree(t *testing.T) {
	for i, wl := range allSamples() {
		canonical := words.CountWords(wl)
		// inline closure
		closure := make(words.Frequencies)
		for _, w := range wl {
			func(s string) {
				if _, found := closure[s]; !found {
					closure[s] = 1
				} else {
					closure[s]++
				}
			}(w)
		}
		// stateful counter object
		counter := &wordCounter{counts: make(words.Frequencies)}
		for _, w := range wl {
			counter.count(w)
		}
		assert.Equal(t, closure, canonical, "sample #%d: closure", i)
		assert.Equal(t, counter.counts, canonical, "sample #%d: counter object", i)
		assert.Equal(t, len(wl), canonical.Total(), "sample #%d: total", i)
	}
}

// --- Deduplication ---------------------------------------------------------

func TestDeduplicate(t *testing.T) {
	wl := []string{"pear", "apple", "pear", "Zebra", "apple", "fig"}
	original := append([]string{}, wl...)
	distinct := words.Deduplicate(wl)
	assert.Equal(t, []string{"Zebra", "apple", "fig", "pear"}, distinct)
	assert.Equal(t, original, wl, "input must not be modified")
	assert.Empty(t, words.Deduplicate(nil))
}

func TestDeduplicateProperties(t *testing.T) {
	for i, wl := range allSamples() {
		distinct := words.Deduplicate(wl)
		assert.True(t, sort.StringsAreSorted(distinct), "sample #%d not sorted", i)
		for j := 1; j < len(distinct); j++ {
			assert.NotEqual(t, distinct[j-1], distinct[j], "sample #%d has duplicates", i)
		}
		set := make(map[string]bool)
		for _, w := range wl {
			set[w] = true
		}
		assert.Len(t, distinct, len(set), "sample #%d", i)
		for _, w := range distinct {
			assert.True(t, set[w], "sample #%d: %q not in input", i, w)
		}
		assert.Equal(t, distinct, words.Deduplicate(distinct), "sample #%d: not idempotent", i)
	}
}

// --- Palindromes -----------------------------------------------------------

func TestIsPalindrome(t *testing.T) {
	cases := []struct {
		phrase     string
		palindrome bool
	}{
		{"", true},
		{"A man, a plan, a canal: Panama", true},
		{"hello", false},
		{"a", true},
		{"Noon", true},
		{"12321", true}, // no letters at all
		{"!!! ...", true},
		{"Was it a car or a cat I saw?", true},
		{"No 'x' in Nixon", true},
		{"ab", false},
		{"ΣαΣ", true},
		{"Step on no pets!", true},
		{"palindrome", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.palindrome, words.IsPalindrome(c.phrase), "phrase %q", c.phrase)
	}
}

// --- Length filter ---------------------------------------------------------

// lengthIs is a predicate value holding its target length.
type lengthIs struct {
	n int
}

func (p lengthIs) test(word string) bool {
	return len([]rune(word)) == p.n
}

func TestCountLength(t *testing.T) {
	wl := []string{"go", "rust", "", "zig", "c", "java", "日本"}
	assert.Equal(t, 2, words.CountLength(wl, 2))
	assert.Equal(t, 2, words.CountLength(wl, 4))
	assert.Equal(t, 1, words.CountLength(wl, 0))
	assert.Equal(t, 0, words.CountLength(wl, 100))
	assert.Equal(t, 0, words.CountLength(wl, -1))
	assert.Equal(t, 0, words.CountLength(nil, 3))
}

func TestCountLengthIdiomsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfp.words")
	defer teardown()
	//
	for i, wl := range allSamples() {
		for n := -2; n <= 8; n++ {
			canonical := words.CountLength(wl, n)
			target := n
			closure := wordfp.CountIf(wl, func(w string) bool {
				return len([]rune(w)) == target
			})
			object := wordfp.CountIf(wl, lengthIs{n: n}.test)
			bound := wordfp.CountIf(wl, wordfp.Bind(words.HasLength, n))
			manual := 0
			for _, w := range wl {
				if n >= 0 && words.Len(w) == n {
					manual++
				}
			}
			require.Equal(t, manual, canonical, "sample #%d, n=%d", i, n)
			assert.Equal(t, canonical, closure, "sample #%d, n=%d: closure", i, n)
			assert.Equal(t, canonical, object, "sample #%d, n=%d: predicate object", i, n)
			assert.Equal(t, canonical, bound, "sample #%d, n=%d: bound function", i, n)
		}
	}
}

// --- Multiset rendering ----------------------------------------------------

func TestRenderByLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfp.words")
	defer teardown()
	//
	assert.Equal(t, "a a bb cc", words.RenderByLength([]string{"bb", "a", "cc", "a"}))
	assert.Equal(t, "c ab bb abc", words.RenderByLength([]string{"abc", "bb", "c", "ab"}))
	assert.Equal(t, "", words.RenderByLength(nil))
}

func TestRenderDefault(t *testing.T) {
	assert.Equal(t, "a a bb cc", words.RenderDefault([]string{"cc", "a", "bb", "a"}))
	assert.Equal(t, "B a b", words.RenderDefault([]string{"b", "a", "B"}))
}

func TestRenderKeepsMultiplicities(t *testing.T) {
	for i, wl := range allSamples() {
		for _, cmp := range []func(a, b string) int{words.Lexicographic, words.ByLength} {
			rendered := words.Render(wl, cmp)
			expected := append([]string{}, wl...)
			sort.SliceStable(expected, func(i, j int) bool {
				return cmp(expected[i], expected[j]) < 0
			})
			assert.Equal(t, strings.Join(expected, " "), rendered, "sample #%d", i)
		}
	}
}
