package topo

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Engine collects a requested number of independent path samples, serially or
// across a fresh pool of workers joined before Run returns.
//
// Work distribution is dynamic: workers race on an atomic countdown, so a few
// expensive paths (step count is data dependent) do not stall a static
// partition. The returned slice is an unordered multiset; only its length and
// distribution are contractual.
type Engine struct {
	tracer  *Tracer
	workers int
	seed    int64
	log     *zap.Logger

	completed atomic.Int64
}

func NewEngine(tracer *Tracer, workers int, seed int64, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{tracer: tracer, workers: workers, seed: seed, log: log}
}

// Completed reports the number of finished trials; safe to poll from other
// goroutines while Run is in flight.
func (e *Engine) Completed() int64 { return e.completed.Load() }

// Run returns exactly n samples. Worker i draws from its own generator seeded
// with seed+i, so per-worker sequences reproduce across runs even though the
// interleaving of appends does not. Trials are never retried or filtered;
// non-finite samples count toward n.
func (e *Engine) Run(n int) []PathSample {
	e.log.Info("sampling topology",
		zap.Int("samples", n),
		zap.Int("workers", e.workers),
	)

	e.completed.Store(0)

	if e.workers <= 1 {
		rng := rand.New(rand.NewSource(e.seed))
		results := make([]PathSample, 0, n)
		for i := 0; i < n; i++ {
			results = append(results, e.tracer.Sample(rng))
			e.completed.Add(1)
		}
		return results
	}

	var remaining atomic.Int64
	remaining.Store(int64(n))

	var mu sync.Mutex
	results := make([]PathSample, 0, n)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(e.seed + int64(id)))

			// claim-then-compute: the lock covers only the append
			for remaining.Add(-1) >= 0 {
				s := e.tracer.Sample(rng)

				mu.Lock()
				results = append(results, s)
				mu.Unlock()

				e.completed.Add(1)
			}
		}(w)
	}

	wg.Wait()
	return results
}
