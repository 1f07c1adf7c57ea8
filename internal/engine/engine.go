package engine

import (
	"runtime"
	"sync"

	"github.com/scrubsync/scrubsync/internal/scrub"
	"github.com/scrubsync/scrubsync/internal/targets"
)

// fallbackThreads is used when hardware parallelism cannot be determined.
const fallbackThreads = 4

// Config controls a scrub run. The target set and these flags are read-only
// once Run starts; the only shared mutable state is the work queue and the
// ledger.
type Config struct {
	// Threads is the worker pool size; 0 means hardware parallelism.
	Threads     int
	ClearByte   byte
	Replacement string
	BinaryOnly  bool
	TextOnly    bool
	// Progress, if set, is invoked once per completed file from worker
	// goroutines and must be safe for concurrent use.
	Progress func()
}

// PoolSize resolves the effective worker count for cfg.
func (cfg Config) PoolSize() int {
	n := cfg.Threads
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n <= 0 {
		n = fallbackThreads
	}
	return n
}

// Run scrubs every file exactly once across a fixed pool of workers sharing
// one FIFO queue, and returns the drained ledger. Closing the queue is the
// terminal signal: a worker exits when the channel is closed and empty.
// Per-file errors are recorded in the ledger and never abort the run; final
// ledger contents are identical for any pool size.
func Run(files []string, set targets.Set, cfg Config) *Ledger {
	ledger := newLedger(len(files))
	if len(files) == 0 || set.Empty() {
		return ledger
	}

	opts := scrub.Options{
		ClearByte:   cfg.ClearByte,
		Replacement: cfg.Replacement,
		BinaryOnly:  cfg.BinaryOnly,
		TextOnly:    cfg.TextOnly,
	}

	queue := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < cfg.PoolSize(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				ledger.record(path, scrub.ProcessFile(path, set, opts))
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}()
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		queue <- f
	}
	close(queue)

	// Join barrier: the ledger is undefined for readers until every worker
	// has exited.
	wg.Wait()
	return ledger
}
