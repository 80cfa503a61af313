// File: arc/arc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arc

import "sync/atomic"

// cell is the shared state behind every Ref and Weak of one value.
type cell[T any] struct {
	val    T
	strong atomic.Int64
}

// Ref is a strong, counted handle to a value. Holding a Ref keeps the value
// alive: weak upgrades succeed for as long as at least one Ref is
// outstanding. Each acquired Ref must be released exactly once.
type Ref[T any] struct {
	c *cell[T]
}

// New wraps v in a cell and returns the first strong handle to it.
func New[T any](v T) *Ref[T] {
	c := &cell[T]{}
	c.val = v
	c.strong.Store(1)
	return &Ref[T]{c: c}
}

// Value returns the wrapped value. Valid only between acquisition and
// Release of this handle.
func (r *Ref[T]) Value() T {
	return r.c.val
}

// Clone acquires an additional strong handle to the same value.
func (r *Ref[T]) Clone() *Ref[T] {
	r.c.strong.Add(1)
	return &Ref[T]{c: r.c}
}

// Downgrade returns a weak handle that observes the value without keeping
// it alive.
func (r *Ref[T]) Downgrade() Weak[T] {
	return Weak[T]{c: r.c}
}

// Release drops this strong handle. When the last strong handle is
// released the value is dropped and every weak handle is expired.
func (r *Ref[T]) Release() {
	if r.c.strong.Add(-1) == 0 {
		var zero T
		r.c.val = zero
	}
}

// Weak is a non-owning handle. The zero Weak is valid and always expired.
type Weak[T any] struct {
	c *cell[T]
}

// Upgrade attempts to acquire a strong handle. It fails once the strong
// count has reached zero; the count can never be resurrected afterwards.
func (w Weak[T]) Upgrade() (*Ref[T], bool) {
	if w.c == nil {
		return nil, false
	}
	for {
		s := w.c.strong.Load()
		if s <= 0 {
			return nil, false
		}
		if w.c.strong.CompareAndSwap(s, s+1) {
			return &Ref[T]{c: w.c}, true
		}
	}
}

// Expired reports whether an upgrade would fail right now. The answer can
// be stale by the time the caller acts on it; Upgrade is the only
// authoritative check.
func (w Weak[T]) Expired() bool {
	return w.c == nil || w.c.strong.Load() <= 0
}
