// File: api/entity.go
// Package api defines entity capability interfaces.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Entity is the minimal contract shared by everything the core can index:
// a stable handle used as its identity. Subscriptions, services, clients
// and guard conditions need nothing beyond identity: a handle match in a
// wait result is sufficient evidence of readiness for them.
type Entity interface {
	Handle() Handle
}

// Timer is an entity with an atomic claim step. AttemptFire claims the
// pending firing; it returns false when another consumer already claimed
// it or the timer was not actually due.
type Timer interface {
	Entity

	AttemptFire() bool
}

// Waitable aggregates an arbitrary number of underlying wait handles into
// one logical entity. Readiness cannot be established by handle match
// alone, so the entity inspects the whole wait result itself.
type Waitable interface {
	Entity

	// Handles reports the underlying handles to register with the wait
	// primitive.
	Handles() []Handle

	// IsReady reports whether the wait result signals this waitable.
	IsReady(*WaitResult) bool

	// TakePayload extracts the pending data for one readiness event.
	// It must be called at most once per event.
	TakePayload() any
}
