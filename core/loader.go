package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/internal/csvtab"
	"github.com/arenalens/arenalens/schema"
)

// ErrStaleLoad marks a load whose results were superseded by a newer load
// started while its fetches were still outstanding. Callers discard the
// result and keep whatever the newer load produces.
var ErrStaleLoad = errors.New("load superseded by a newer load")

// Source fetches one named leaderboard file.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads leaderboard files from a local directory.
type DirSource struct {
	Dir string
}

// Fetch reads the named file from the source directory.
func (s DirSource) Fetch(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, name))
}

// HTTPSource fetches leaderboard files relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// Fetch retrieves the named file over HTTP. Non-2xx responses are errors so
// that a missing arena file degrades the same way a filesystem miss does.
func (s HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", name, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// NewSource selects the data source implied by the configuration: a base URL
// when one is set, the data directory otherwise.
func NewSource(cfg *contract.Config) Source {
	if cfg.DataURL != "" {
		return HTTPSource{BaseURL: cfg.DataURL, Client: &http.Client{Timeout: 30 * time.Second}}
	}
	return DirSource{Dir: cfg.DataDir}
}

// Loader orchestrates one full data load: the primary file plus every arena
// file, fetched concurrently. Loads are all-settled, never fail-fast: one
// unreachable arena degrades to an empty arena without touching the others,
// while a primary failure fails the whole load.
type Loader struct {
	src Source
	gen atomic.Uint64
}

// NewLoader returns a Loader over the given source.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load fetches and builds a fresh immutable snapshot. Each load carries a
// monotonically increasing generation tag; if a newer load starts before this
// one settles, the stale result is discarded with ErrStaleLoad.
func (l *Loader) Load(ctx context.Context) (*schema.Snapshot, error) {
	gen := l.gen.Add(1)

	// 1. Primary file. Failure here is fatal to the whole load.
	raw, err := l.src.Fetch(ctx, schema.OverviewFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", schema.OverviewFile, err)
	}
	table := csvtab.Parse(string(raw))
	models := BuildModels(table)
	detected := CountCategories(table)

	// 2. Arena files, concurrently. Goroutines report per-arena failure by
	// leaving an empty slice; the group itself never returns an error.
	results := make([][]schema.ArenaEntry, len(schema.AllArenas))
	g, gctx := errgroup.WithContext(ctx)
	for i, arena := range schema.AllArenas {
		g.Go(func() error {
			raw, err := l.src.Fetch(gctx, schema.ArenaFiles[arena])
			if err != nil {
				return nil
			}
			results[i] = BuildArena(csvtab.Parse(string(raw)))
			return nil
		})
	}
	_ = g.Wait()

	// 3. Discard if a newer load has started meanwhile.
	if l.gen.Load() != gen {
		return nil, ErrStaleLoad
	}

	arenas := make(map[schema.Arena][]schema.ArenaEntry, len(schema.AllArenas))
	for i, arena := range schema.AllArenas {
		arenas[arena] = results[i]
	}
	return &schema.Snapshot{
		Models:             models,
		Arenas:             arenas,
		CategoriesDetected: detected,
		Generation:         gen,
		LoadedAt:           time.Now(),
	}, nil
}
