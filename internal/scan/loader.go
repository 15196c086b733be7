package scan

import (
	"sync/atomic"
	"time"

	"filey/internal/log"
)

// Result is the outcome of one background scan.
type Result struct {
	Seq     uint64
	Path    string
	Entries []Entry
	Elapsed time.Duration
}

// Loader runs directory scans on their own goroutines. Each dispatch gets a
// monotonically increasing sequence number; consumers apply a result only if
// it is still the latest (see Stale), so starting a new navigation quietly
// retires any scan already in flight instead of stopping and waiting for it.
type Loader struct {
	seq     atomic.Uint64
	results chan Result
}

// NewLoader creates a Loader. The results channel is buffered so a retired
// scan finishing late never blocks its goroutine.
func NewLoader() *Loader {
	return &Loader{
		results: make(chan Result, 8),
	}
}

// Dispatch starts a background scan of path and returns its sequence number.
func (l *Loader) Dispatch(path string) uint64 {
	seq := l.seq.Add(1)
	go func() {
		start := time.Now()
		entries := List(path)
		elapsed := time.Since(start)
		log.Debugf("scanned %s: %d entries in %s", path, len(entries), elapsed)

		select {
		case l.results <- Result{Seq: seq, Path: path, Entries: entries, Elapsed: elapsed}:
		default:
			// Nobody draining and the buffer is full; the result is
			// stale by definition, drop it.
			log.Debugf("dropped scan result for %s (seq %d)", path, seq)
		}
	}()
	return seq
}

// Results delivers finished scans, stale ones included; filter with Stale.
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Stale reports whether r has been superseded by a later dispatch.
func (l *Loader) Stale(r Result) bool {
	return r.Seq != l.seq.Load()
}
