package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lettercount/internal/domain"
)

func sampleHistogram() *domain.Histogram {
	return &domain.Histogram{
		Elapsed: 1500 * time.Millisecond,
		Groups: []domain.GroupSummary{
			{Extension: ".js", Files: 1, Letters: 4},
			{Extension: ".ts", Files: 1, Letters: 6},
		},
		Letters: []domain.LetterCount{
			{Count: 4, Letter: 'a'},
			{Count: 3, Letter: 'b'},
			{Count: 2, Letter: 'c'},
		},
	}
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderList(&buf, sampleHistogram()))

	assert.Equal(t, "a: 4 occurrences\nb: 3 occurrences\nc: 2 occurrences\n", buf.String())
}

func TestRenderList_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderList(&buf, &domain.Histogram{}))

	assert.Empty(t, buf.String())
}

func TestRenderList_NonASCIILetter(t *testing.T) {
	var buf bytes.Buffer
	h := &domain.Histogram{Letters: []domain.LetterCount{{Count: 1, Letter: 'é'}}}

	require.NoError(t, RenderList(&buf, h))

	assert.Equal(t, "é: 1 occurrences\n", buf.String())
}

func TestRenderElapsed(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderElapsed(&buf, 1500*time.Millisecond))

	assert.Equal(t, "Elapsed time: 1.5s\n", buf.String())
}

func TestRenderChart(t *testing.T) {
	out := ansi.Strip(RenderChart("lodash/lodash", sampleHistogram()))

	assert.Contains(t, out, "Letter frequency - lodash/lodash")
	assert.Contains(t, out, ".js 1 files, 4 letters")
	assert.Contains(t, out, ".ts 1 files, 6 letters")
	assert.Contains(t, out, "Total: 9 letters in 2 files")

	lines := strings.Split(out, "\n")
	var bars []string
	for _, line := range lines {
		if strings.Contains(line, chartBarRune) {
			bars = append(bars, line)
		}
	}
	require.Len(t, bars, 3)
	assert.True(t, strings.HasPrefix(bars[0], "a "))
	assert.Equal(t, chartBarWidth, strings.Count(bars[0], chartBarRune))
}

func TestRenderChart_Empty(t *testing.T) {
	out := ansi.Strip(RenderChart("o/r", &domain.Histogram{}))

	assert.Contains(t, out, "No letters counted.")
}

func TestRenderChart_HumanizesCounts(t *testing.T) {
	h := &domain.Histogram{Letters: []domain.LetterCount{{Count: 1234567, Letter: 'e'}}}

	out := ansi.Strip(RenderChart("o/r", h))

	assert.Contains(t, out, "1,234,567")
}

func TestRenderError(t *testing.T) {
	out := ansi.Strip(RenderError(errors.New("boom")))

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "boom")
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		peak     int64
		expected int
	}{
		{"peak fills width", 10, 10, 50},
		{"half", 5, 10, 25},
		{"tiny gets one cell", 1, 1000000, 1},
		{"zero", 0, 10, 0},
		{"zero peak", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, barLength(tt.count, tt.peak, chartBarWidth))
		})
	}
}
