package cmd

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptergithub "github.com/renato0307/lettercount/internal/adapters/github"
	"github.com/renato0307/lettercount/internal/config"
	"github.com/renato0307/lettercount/internal/ports"
	portsmocks "github.com/renato0307/lettercount/internal/ports/mocks"
)

func TestNewContainer_UsesFactory(t *testing.T) {
	source := portsmocks.NewMockContentSource(t)
	var got config.Config

	container, err := NewContainer(context.Background(), config.Default(),
		func(_ context.Context, cfg config.Config) (ports.ContentSource, error) {
			got = cfg
			return source, nil
		})

	require.NoError(t, err)
	assert.Same(t, source, container.Source)
	assert.NotNil(t, container.HistogramService)
	assert.Equal(t, "lodash/lodash", got.Repo.String())
}

func TestNewContainer_FactoryError(t *testing.T) {
	boom := errors.New("boom")

	container, err := NewContainer(context.Background(), config.Default(),
		func(context.Context, config.Config) (ports.ContentSource, error) {
			return nil, boom
		})

	assert.Nil(t, container)
	assert.ErrorIs(t, err, boom)
}

func TestNewContentSource_API(t *testing.T) {
	source, err := newContentSource(context.Background(), config.Default())

	require.NoError(t, err)
	assert.IsType(t, &adaptergithub.ContentSource{}, source)
}

func TestNewContentSource_UnknownSource(t *testing.T) {
	cfg := config.Default()
	cfg.Source = "svn"

	source, err := newContentSource(context.Background(), cfg)

	assert.Nil(t, source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown source "svn"`)
}
