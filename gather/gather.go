package gather

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
	"github.com/introspec-io/introspec/specerrors"
)

// defaultLimit bounds concurrent fetches per gather.
const defaultLimit = 8

// Result is the outcome of fetching one resource's metadata. Exactly one of
// Meta and Err is meaningful.
type Result struct {
	Meta *resource.ResourceMetadata
	Err  error
}

// Batch maps resource paths to fetch outcomes. It is the assembler's only
// input.
type Batch map[string]Result

// Add records a successful fetch.
func (b Batch) Add(meta *resource.ResourceMetadata) {
	b[meta.Path] = Result{Meta: meta}
}

// AddError records a failed fetch.
func (b Batch) AddError(path string, err error) {
	b[path] = Result{Err: err}
}

// Succeeded returns the sorted paths of successfully fetched resources.
func (b Batch) Succeeded() []string {
	paths := make([]string, 0, len(b))
	for path, r := range b {
		if r.Err == nil && r.Meta != nil {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// Failed returns the sorted paths of resources whose fetch failed.
func (b Batch) Failed() []string {
	var paths []string
	for path, r := range b {
		if r.Err != nil || r.Meta == nil {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// Source enumerates resources and fetches their metadata.
type Source interface {
	// List returns the paths of all known resources.
	List(ctx context.Context) ([]string, error)

	// Fetch retrieves one resource's metadata.
	Fetch(ctx context.Context, path string) (*resource.ResourceMetadata, error)
}

// Gatherer fans out over a Source with bounded concurrency.
type Gatherer struct {
	source Source
	limit  int
	logger spec.Logger
}

// NewGatherer returns a Gatherer over the source with the default
// concurrency limit.
func NewGatherer(source Source) *Gatherer {
	return &Gatherer{
		source: source,
		limit:  defaultLimit,
		logger: spec.NopLogger{},
	}
}

// WithLimit sets the maximum number of concurrent fetches. Values below one
// are ignored.
func (g *Gatherer) WithLimit(n int) *Gatherer {
	if n > 0 {
		g.limit = n
	}
	return g
}

// WithLogger sets the logger. A nil logger disables logging.
func (g *Gatherer) WithLogger(logger spec.Logger) *Gatherer {
	if logger == nil {
		logger = spec.NopLogger{}
	}
	g.logger = logger
	return g
}

// Gather lists the source's resources and fetches them all, recording every
// outcome in the returned batch. Only a failed List fails the gather;
// per-resource fetch errors are recorded and logged, not returned.
func (g *Gatherer) Gather(ctx context.Context) (Batch, error) {
	paths, err := g.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("gather: %w: %w", specerrors.ErrGather, err)
	}

	batch := make(Batch, len(paths))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.limit)
	for _, path := range paths {
		eg.Go(func() error {
			meta, fetchErr := g.source.Fetch(ctx, path)
			if fetchErr != nil {
				g.logger.Warn("fetching resource metadata failed",
					"resource", path, "error", fetchErr)
			}
			mu.Lock()
			batch[path] = Result{Meta: meta, Err: fetchErr}
			mu.Unlock()
			return nil
		})
	}
	// workers never return errors, Wait only serves as a barrier
	_ = eg.Wait()
	return batch, nil
}
