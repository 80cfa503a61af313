// File: executor/resolver.go
// Package executor implements readiness resolution and admission control.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package executor

import (
	"github.com/momentics/hioload-exec/api"
	"github.com/momentics/hioload-exec/arc"
	"github.com/momentics/hioload-exec/group"
)

// Resolver turns a wait result plus a Collection into admitted work items.
// It is stateless between calls; the group cache below lives for exactly
// one pass.
type Resolver struct {
	cfg config
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	return &Resolver{cfg: newConfig(opts)}
}

// cachedGroup memoizes one group resolution for the duration of a pass:
// the strong reference (nil when the group is gone) and the admission
// flag as read at first sight.
type cachedGroup struct {
	ref            *arc.Ref[*group.CallbackGroup]
	canBeTakenFrom bool
}

// Resolve scans the ready handles of res in fixed kind order (timers,
// subscriptions, services, clients, waitables) and pushes one WorkItem
// per admitted entity onto q. It returns the number of items pushed.
//
// Admission: an entity is skipped only when its owning group is live and
// its admission flag was false at first sight this pass. A group that no
// longer resolves imposes no restriction. Timers must additionally win
// their atomic claim. Every anomaly (unknown handle, dead entity, denied
// group, lost claim) is silently not admitted; a non-ready res yields
// zero items and is the normal no-work case.
func (r *Resolver) Resolve(c *Collection, res *api.WaitResult, q *ReadyQueue) int {
	if c == nil || q == nil || res == nil || res.Kind != api.WaitResultReady {
		return 0
	}

	cache := make(map[arc.Weak[*group.CallbackGroup]]cachedGroup)
	defer func() {
		for _, cg := range cache {
			if cg.ref != nil {
				cg.ref.Release()
			}
		}
	}()

	groupInfo := func(w arc.Weak[*group.CallbackGroup]) cachedGroup {
		if cg, ok := cache[w]; ok {
			return cg
		}
		var cg cachedGroup
		if ref, ok := w.Upgrade(); ok {
			cg.ref = ref
			cg.canBeTakenFrom = ref.Value().CanBeTakenFrom().Load()
		}
		cache[w] = cg
		return cg
	}

	added := 0

	scan := func(kind api.Kind, ready []api.Handle, claim func(api.Entity) bool) {
		m := c.byKind(kind)
		for _, h := range ready {
			if h == 0 {
				continue
			}
			entry, ok := m.Get(h)
			if !ok {
				continue
			}
			ent, ok := entry.Entity.Upgrade()
			if !ok {
				r.count(MetricSkippedDead)
				continue
			}
			gi := groupInfo(entry.Group)
			if gi.ref != nil && !gi.canBeTakenFrom {
				ent.Release()
				r.count(MetricSkippedGroup)
				continue
			}
			if claim != nil && !claim(ent.Value()) {
				ent.Release()
				r.count(MetricTimerClaimLost)
				continue
			}
			item := WorkItem{Kind: kind, Entity: ent}
			if gi.ref != nil {
				item.Group = gi.ref.Clone()
			}
			q.Push(item)
			added++
		}
	}

	scan(api.KindTimer, res.Timers, func(e api.Entity) bool {
		tm, ok := e.(api.Timer)
		return ok && tm.AttemptFire()
	})
	scan(api.KindSubscription, res.Subscriptions, nil)
	scan(api.KindService, res.Services, nil)
	scan(api.KindClient, res.Clients, nil)

	// Waitables collapse many wait handles into one entity, so they are
	// matched by asking each indexed entry rather than by handle lookup.
	// Key order of the mapping decides visit order; stable, not a
	// scheduling guarantee.
	it := c.waitables.Iterator()
	for it.Next() {
		entry := it.Value()
		ent, ok := entry.Entity.Upgrade()
		if !ok {
			r.count(MetricSkippedDead)
			continue
		}
		w, ok := ent.Value().(api.Waitable)
		if !ok || !w.IsReady(res) {
			ent.Release()
			continue
		}
		gi := groupInfo(entry.Group)
		if gi.ref != nil && !gi.canBeTakenFrom {
			ent.Release()
			r.count(MetricSkippedGroup)
			continue
		}
		item := WorkItem{Kind: api.KindWaitable, Entity: ent, Payload: w.TakePayload()}
		if gi.ref != nil {
			item.Group = gi.ref.Clone()
		}
		q.Push(item)
		added++
	}

	if r.cfg.metrics != nil {
		r.cfg.metrics.Add(MetricAdmitted, int64(added))
	}
	r.cfg.log.Debug().
		Int("added", added).
		Int("queued", q.Len()).
		Msg("readiness pass")
	return added
}

func (r *Resolver) count(key string) {
	if r.cfg.metrics != nil {
		r.cfg.metrics.Inc(key)
	}
}
