package core

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalens/arenalens/schema"
)

const loaderPrimary = "model,overall\ngpt-4,1\nclaude-3,2\n"
const loaderArena = "Rank,Model,Score\n1,gpt-4,1337\n"

// mapSource serves canned payloads and fails every other file.
type mapSource struct {
	files map[string][]byte
}

func (s mapSource) Fetch(_ context.Context, name string) ([]byte, error) {
	if raw, ok := s.files[name]; ok {
		return raw, nil
	}
	return nil, errors.New("not found")
}

func TestLoadAllSettled(t *testing.T) {
	// Only two arena files exist; the other five must degrade to empty
	// arenas without failing the load.
	src := mapSource{files: map[string][]byte{
		schema.OverviewFile:                   []byte(loaderPrimary),
		schema.ArenaFiles[schema.TextArena]:   []byte(loaderArena),
		schema.ArenaFiles[schema.WebDevArena]: []byte(loaderArena),
	}}

	snap, err := NewLoader(src).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Models, 2)
	assert.Len(t, snap.Arenas, len(schema.AllArenas))
	assert.Len(t, snap.Arenas[schema.TextArena], 1)
	assert.Len(t, snap.Arenas[schema.WebDevArena], 1)
	assert.Empty(t, snap.Arenas[schema.VisionArena])
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestLoadPrimaryFailureIsFatal(t *testing.T) {
	src := mapSource{files: map[string][]byte{
		schema.ArenaFiles[schema.TextArena]: []byte(loaderArena),
	}}

	_, err := NewLoader(src).Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), schema.OverviewFile)
}

func TestLoadGenerationIncrements(t *testing.T) {
	src := mapSource{files: map[string][]byte{
		schema.OverviewFile: []byte(loaderPrimary),
	}}
	loader := NewLoader(src)

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	second, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.Generation)
	assert.Equal(t, uint64(2), second.Generation)
}

// gatedSource blocks the first load's arena fetches until released, letting a
// test overlap two loads deterministically.
type gatedSource struct {
	primaryOnce sync.Once
	started     chan struct{}
	release     chan struct{}
	arenaCalls  atomic.Int64
}

func (s *gatedSource) Fetch(_ context.Context, name string) ([]byte, error) {
	if name == schema.OverviewFile {
		s.primaryOnce.Do(func() { close(s.started) })
		return []byte(loaderPrimary), nil
	}
	// The first seven arena fetches belong to the first load; park them all.
	if s.arenaCalls.Add(1) <= int64(len(schema.AllArenas)) {
		<-s.release
	}
	return []byte(loaderArena), nil
}

func TestLoadStaleResultDiscarded(t *testing.T) {
	src := &gatedSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	loader := NewLoader(src)

	// First load claims its generation, then parks in its arena fetches.
	errCh := make(chan error, 1)
	go func() {
		_, err := loader.Load(context.Background())
		errCh <- err
	}()
	<-src.started

	// Second load runs to completion while the first is still in flight.
	snap, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Generation)

	// The superseded first load reports itself stale.
	close(src.release)
	assert.ErrorIs(t, <-errCh, ErrStaleLoad)
}
