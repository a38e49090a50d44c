package domain

import "time"

// GroupSummary describes the files counted for one extension
type GroupSummary struct {
	Extension string
	Files     int
	Letters   int64
}

// Histogram is the final result of a run
type Histogram struct {
	Elapsed time.Duration
	Groups  []GroupSummary
	Letters []LetterCount // Ordered by letter ascending
}

// Total returns the number of letters counted across all groups
func (h *Histogram) Total() int64 {
	var total int64
	for _, lc := range h.Letters {
		total += lc.Count
	}
	return total
}

// Files returns the number of files counted across all groups
func (h *Histogram) Files() int {
	var files int
	for _, g := range h.Groups {
		files += g.Files
	}
	return files
}
