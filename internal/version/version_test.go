package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	assert.Equal(t, "lettercount dev (commit: unknown, built: unknown, go: unknown)", Info())
	assert.Equal(t, "lettercount/dev", UserAgent())
}
