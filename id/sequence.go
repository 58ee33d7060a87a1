package id

import (
	"sync/atomic"
)

// Sequence hands out monotonically increasing ids starting at 1. An id, once returned by Next, is never returned
// again, even if whatever it identified is later removed.
type Sequence struct {
	last atomic.Uint64
}

func (s *Sequence) Next() Uint {
	return Uint(s.last.Add(1))
}

// Peek returns the id the next call to Next will return.
func (s *Sequence) Peek() Uint {
	return Uint(s.last.Load() + 1)
}
