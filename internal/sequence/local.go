package sequence

import (
	"context"
	"sync"
)

// LocalGenerator keeps counters in process memory. Every call also asks the
// seeder for the highest number in use, so vouchers saved with an explicit
// number are never handed out again.
type LocalGenerator struct {
	mu       sync.Mutex
	seed     Seeder
	counters map[string]int64
}

func NewLocalGenerator(seed Seeder) *LocalGenerator {
	return &LocalGenerator{seed: seed, counters: make(map[string]int64)}
}

func (g *LocalGenerator) Next(ctx context.Context, prefix string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	last := g.counters[prefix]
	if g.seed != nil {
		highest, err := g.seed(ctx, prefix)
		if err != nil {
			return 0, err
		}
		if highest > last {
			last = highest
		}
	}

	last++
	g.counters[prefix] = last
	return last, nil
}
