package ai

import "sync"

// Dispatcher serializes generation results. Each request takes a
// monotonically increasing sequence number; only the response matching
// the latest issued request is kept, so a slow earlier response can
// never overwrite a newer one.
type Dispatcher struct {
	mu     sync.Mutex
	issued uint64
	seq    uint64
	result string
}

// Begin issues the next sequence number. Call once per generation
// request before dispatching it.
func (d *Dispatcher) Begin() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.issued++
	return d.issued
}

// Complete stores text if seq still belongs to the latest issued
// request. It reports whether the result was accepted or discarded as
// stale.
func (d *Dispatcher) Complete(seq uint64, text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.issued {
		return false
	}
	d.seq = seq
	d.result = text
	return true
}

// Latest returns the most recently accepted result and its sequence
// number. A zero sequence means nothing has completed yet.
func (d *Dispatcher) Latest() (string, uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result, d.seq
}
