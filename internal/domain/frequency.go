package domain

import (
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"
)

// FrequencyMap maps a lowercase letter to its number of occurrences
type FrequencyMap map[rune]int64

// LetterCount is a single histogram row
type LetterCount struct {
	Count  int64
	Letter rune
}

// CountLetters returns the case-insensitive letter frequencies of text.
// Runes that are not letters are skipped, invalid UTF-8 decodes to
// utf8.RuneError which is never a letter.
func CountLetters(text []byte) FrequencyMap {
	counts := make(FrequencyMap)
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if !unicode.IsLetter(r) {
			continue
		}
		counts[unicode.ToLower(r)]++
	}
	return counts
}

// Merge sums any number of frequency maps into a new map.
// Inputs are left untouched.
func Merge(maps ...FrequencyMap) FrequencyMap {
	merged := make(FrequencyMap)
	for _, m := range maps {
		for letter, count := range m {
			merged[letter] += count
		}
	}
	return merged
}

// Sorted returns the map as rows ordered by letter ascending
func (m FrequencyMap) Sorted() []LetterCount {
	rows := make([]LetterCount, 0, len(m))
	for letter, count := range m {
		rows = append(rows, LetterCount{Count: count, Letter: letter})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Letter < rows[j].Letter
	})
	return rows
}

// Total returns the sum of all counts
func (m FrequencyMap) Total() int64 {
	var total int64
	for _, count := range m {
		total += count
	}
	return total
}

// Tally accumulates letter counts from concurrent writers
type Tally struct {
	counts FrequencyMap
	mu     sync.Mutex
}

// NewTally creates an empty Tally
func NewTally() *Tally {
	return &Tally{counts: make(FrequencyMap)}
}

// Add folds a partial result into the tally under one lock acquisition
func (t *Tally) Add(partial FrequencyMap) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for letter, count := range partial {
		t.counts[letter] += count
	}
}

// Snapshot returns a copy of the current counts
func (t *Tally) Snapshot() FrequencyMap {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Merge(t.counts)
}
