package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLetters_CaseFolding(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FrequencyMap
	}{
		{"empty", "", FrequencyMap{}},
		{"mixed case", "Aa Bb", FrequencyMap{'a': 2, 'b': 2}},
		{"lowercase only", "aabbcc", FrequencyMap{'a': 2, 'b': 2, 'c': 2}},
		{"digits and punctuation", "x = 42; // y!", FrequencyMap{'x': 1, 'y': 1}},
		{"whitespace only", " \t\n\r", FrequencyMap{}},
		{"non-latin letters", "ÄäΩω", FrequencyMap{'ä': 2, 'ω': 2}},
		{"symbols", "→€©", FrequencyMap{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CountLetters([]byte(tt.input))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCountLetters_SkipsInvalidUTF8(t *testing.T) {
	result := CountLetters([]byte{'a', 0xff, 0xfe, 'B'})

	assert.Equal(t, FrequencyMap{'a': 1, 'b': 1}, result)
}

func TestMerge_SumsSharedKeys(t *testing.T) {
	a := FrequencyMap{'a': 2, 'b': 2}
	b := FrequencyMap{'a': 2, 'b': 1, 'c': 2}

	merged := Merge(a, b)

	assert.Equal(t, FrequencyMap{'a': 4, 'b': 3, 'c': 2}, merged)
}

func TestMerge_KeepsKeysFromOneSide(t *testing.T) {
	merged := Merge(FrequencyMap{'x': 1}, FrequencyMap{'y': 7})

	assert.Equal(t, FrequencyMap{'x': 1, 'y': 7}, merged)
}

func TestMerge_Commutative(t *testing.T) {
	a := FrequencyMap{'a': 1, 'q': 9}
	b := FrequencyMap{'a': 3, 'z': 2}

	assert.Equal(t, Merge(a, b), Merge(b, a))
}

func TestMerge_Associative(t *testing.T) {
	a := FrequencyMap{'a': 1}
	b := FrequencyMap{'a': 2, 'b': 5}
	c := FrequencyMap{'b': 1, 'c': 4}

	assert.Equal(t, Merge(Merge(a, b), c), Merge(a, Merge(b, c)))
}

func TestMerge_EmptyIsIdentity(t *testing.T) {
	a := FrequencyMap{'a': 1, 'b': 2}

	assert.Equal(t, a, Merge(a, FrequencyMap{}))
	assert.Equal(t, a, Merge(FrequencyMap{}, a))
	assert.Empty(t, Merge())
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := FrequencyMap{'a': 1}
	b := FrequencyMap{'a': 2}

	Merge(a, b)

	assert.Equal(t, FrequencyMap{'a': 1}, a)
	assert.Equal(t, FrequencyMap{'a': 2}, b)
}

func TestFrequencyMap_SortedByLetter(t *testing.T) {
	m := FrequencyMap{'c': 2, 'a': 4, 'b': 3}

	rows := m.Sorted()

	require.Len(t, rows, 3)
	assert.Equal(t, []LetterCount{
		{Count: 4, Letter: 'a'},
		{Count: 3, Letter: 'b'},
		{Count: 2, Letter: 'c'},
	}, rows)
	assert.Equal(t, int64(9), m.Total())
}

func TestTally_ConcurrentAddsAreNotLost(t *testing.T) {
	tally := NewTally()
	partial := CountLetters([]byte("Hello"))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tally.Add(partial)
		}()
	}
	wg.Wait()

	assert.Equal(t, FrequencyMap{'h': 100, 'e': 100, 'l': 200, 'o': 100}, tally.Snapshot())
}

func TestTally_SnapshotIsACopy(t *testing.T) {
	tally := NewTally()
	tally.Add(FrequencyMap{'a': 1})

	snap := tally.Snapshot()
	snap['a'] = 99

	assert.Equal(t, FrequencyMap{'a': 1}, tally.Snapshot())
}
