package visualcube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cubedeck/cubedeck/pkg/cards"
	"github.com/cubedeck/cubedeck/pkg/errors"
)

// DefaultWorkers is the fetch pool size used when FetchOptions leaves
// Workers at zero.
const DefaultWorkers = 8

// FetchOptions controls a FetchAll run.
type FetchOptions struct {
	Workers  int  // concurrent fetches, DefaultWorkers if <= 0
	Refresh  bool // bypass the response cache
	Progress func(done, total int)
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	return o
}

type fetchJob struct {
	index int
	alg   string // name, for error context
	card  cards.Card
}

type fetchResult struct {
	index    int
	filename string
	err      error
}

// FetchAll downloads one icon per card into dir, concurrently.
//
// Files are named icon-NN.svg after the card index, which keeps them safe
// for both the filesystem and LaTeX regardless of what the case is called.
// The returned map gives the bare filename for every card index; it is
// complete on success. The first failure cancels outstanding fetches and is
// returned after the pool drains.
func (c *Client) FetchAll(ctx context.Context, cardSet []cards.Card, dir string, opts FetchOptions) (map[int]string, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "creating output directory %s", dir)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan fetchJob)
	results := make(chan fetchResult)

	var wg sync.WaitGroup
	for range min(opts.Workers, len(cardSet)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- c.fetchOne(ctx, j, dir, opts.Refresh)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, card := range cardSet {
			select {
			case jobs <- fetchJob{index: card.Index, alg: card.Algorithm.Name, card: card}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	icons := make(map[int]string, len(cardSet))
	var firstErr error
	done := 0
	for res := range results {
		done++
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		icons[res.index] = res.filename
		if opts.Progress != nil {
			opts.Progress(done, len(cardSet))
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return icons, nil
}

func (c *Client) fetchOne(ctx context.Context, j fetchJob, dir string, refresh bool) fetchResult {
	if ctx.Err() != nil {
		return fetchResult{index: j.index, err: ctx.Err()}
	}

	data, err := c.FetchIcon(ctx, j.card.Algorithm, refresh)
	if err != nil {
		return fetchResult{index: j.index, err: err}
	}

	filename := IconFilename(j.index)
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fetchResult{index: j.index, err: errors.Wrap(errors.ErrCodeInternal, err, "writing icon for %s", j.alg)}
	}
	return fetchResult{index: j.index, filename: filename}
}

// IconFilename returns the on-disk name for a card's icon.
func IconFilename(index int) string {
	return fmt.Sprintf("icon-%02d.svg", index)
}
