// File: group/group.go
// Package group defines CallbackGroup membership and admission state.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package group

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-exec/api"
	"github.com/momentics/hioload-exec/arc"
)

// Policy selects the mutual-exclusion behavior of a group.
type Policy int

const (
	// MutuallyExclusive allows at most one member callback in flight; the
	// dispatcher clears the admission flag while one runs.
	MutuallyExclusive Policy = iota
	// Reentrant places no restriction; the admission flag stays true.
	Reentrant
)

func (p Policy) String() string {
	if p == Reentrant {
		return "reentrant"
	}
	return "mutually_exclusive"
}

// CallbackGroup owns zero or more entities of each kind. Membership is held
// weakly: registering an entity here does not keep it alive.
type CallbackGroup struct {
	policy         Policy
	canBeTakenFrom atomic.Bool

	mu      sync.Mutex
	members [api.KindGuardCondition + 1][]arc.Weak[api.Entity]
}

// New creates a group with the given policy. The admission flag starts
// true for both policies.
func New(p Policy) *CallbackGroup {
	g := &CallbackGroup{policy: p}
	g.canBeTakenFrom.Store(true)
	return g
}

// Policy returns the group's mutual-exclusion policy.
func (g *CallbackGroup) Policy() Policy {
	return g.policy
}

// CanBeTakenFrom exposes the admission flag. The readiness core only loads
// it; the external dispatcher stores false when a mutually-exclusive
// member callback begins running and true when it completes.
func (g *CallbackGroup) CanBeTakenFrom() *atomic.Bool {
	return &g.canBeTakenFrom
}

// Add registers an entity of the given kind with this group.
func (g *CallbackGroup) Add(kind api.Kind, w arc.Weak[api.Entity]) {
	g.mu.Lock()
	g.members[kind] = append(g.members[kind], w)
	g.mu.Unlock()
}

// Remove unregisters an entity previously added under the given kind.
func (g *CallbackGroup) Remove(kind api.Kind, w arc.Weak[api.Entity]) {
	g.mu.Lock()
	list := g.members[kind]
	for i, m := range list {
		if m == w {
			g.members[kind] = append(list[:i], list[i+1:]...)
			break
		}
	}
	g.mu.Unlock()
}

// Size reports the number of registered members across all kinds,
// including members that may have expired since registration.
func (g *CallbackGroup) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, list := range g.members {
		n += len(list)
	}
	return n
}

// Visitor receives one upgraded strong reference per live member during
// CollectAll. Nil fields skip that kind. The reference is valid only for
// the duration of the call; callers wanting to retain a member keep a
// weak handle via Downgrade.
type Visitor struct {
	Timer          func(*arc.Ref[api.Entity])
	Subscription   func(*arc.Ref[api.Entity])
	Service        func(*arc.Ref[api.Entity])
	Client         func(*arc.Ref[api.Entity])
	Waitable       func(*arc.Ref[api.Entity])
	GuardCondition func(*arc.Ref[api.Entity])
}

func (v *Visitor) fn(kind api.Kind) func(*arc.Ref[api.Entity]) {
	switch kind {
	case api.KindTimer:
		return v.Timer
	case api.KindSubscription:
		return v.Subscription
	case api.KindService:
		return v.Service
	case api.KindClient:
		return v.Client
	case api.KindWaitable:
		return v.Waitable
	case api.KindGuardCondition:
		return v.GuardCondition
	}
	return nil
}

// CollectAll enumerates live members kind by kind, upgrading each weak
// reference once and handing the strong reference to the matching visitor
// func. Members whose upgrade fails are pruned from the group.
func (g *CallbackGroup) CollectAll(v Visitor) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for kind := api.KindTimer; kind <= api.KindGuardCondition; kind++ {
		fn := v.fn(kind)
		list := g.members[kind]
		kept := list[:0]
		for _, w := range list {
			s, ok := w.Upgrade()
			if !ok {
				continue
			}
			kept = append(kept, w)
			if fn != nil {
				fn(s)
			}
			s.Release()
		}
		g.members[kind] = kept
	}
}
