// File: executor/collection.go
// Package executor implements the handle-indexed entity collection.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package executor

import (
	"github.com/emirpasic/gods/v2/maps/treemap"

	"github.com/momentics/hioload-exec/api"
	"github.com/momentics/hioload-exec/arc"
	"github.com/momentics/hioload-exec/group"
)

// Entry pairs a weakly held entity with its owning group. Neither
// reference keeps its target alive; every read path upgrades first.
type Entry struct {
	Entity arc.Weak[api.Entity]
	Group  arc.Weak[*group.CallbackGroup]
}

// kindMaps holds one ordered handle-keyed mapping per entity kind.
// Ordered iteration keeps the waitable scan stable within a run.
type kindMaps struct {
	timers          *treemap.Map[api.Handle, Entry]
	subscriptions   *treemap.Map[api.Handle, Entry]
	services        *treemap.Map[api.Handle, Entry]
	clients         *treemap.Map[api.Handle, Entry]
	waitables       *treemap.Map[api.Handle, Entry]
	guardConditions *treemap.Map[api.Handle, Entry]
}

func newKindMaps() kindMaps {
	return kindMaps{
		timers:          treemap.New[api.Handle, Entry](),
		subscriptions:   treemap.New[api.Handle, Entry](),
		services:        treemap.New[api.Handle, Entry](),
		clients:         treemap.New[api.Handle, Entry](),
		waitables:       treemap.New[api.Handle, Entry](),
		guardConditions: treemap.New[api.Handle, Entry](),
	}
}

func (m *kindMaps) byKind(k api.Kind) *treemap.Map[api.Handle, Entry] {
	switch k {
	case api.KindTimer:
		return m.timers
	case api.KindSubscription:
		return m.subscriptions
	case api.KindService:
		return m.services
	case api.KindClient:
		return m.clients
	case api.KindWaitable:
		return m.waitables
	case api.KindGuardCondition:
		return m.guardConditions
	}
	return nil
}

// Collection is the flat, handle-indexed registry of all entities
// reachable from a set of callback groups. It holds only weak references
// and must be rebuilt whenever group membership changes.
//
// Rebuild must be serialized against Resolve by the caller.
type Collection struct {
	kindMaps
	cfg config
}

// NewCollection creates an empty collection.
func NewCollection(opts ...Option) *Collection {
	return &Collection{
		kindMaps: newKindMaps(),
		cfg:      newConfig(opts),
	}
}

// Empty reports whether no entity of any kind is indexed.
func (c *Collection) Empty() bool {
	return c.timers.Empty() &&
		c.subscriptions.Empty() &&
		c.services.Empty() &&
		c.clients.Empty() &&
		c.waitables.Empty() &&
		c.guardConditions.Empty()
}

// Clear discards all entries of every kind.
func (c *Collection) Clear() {
	c.timers.Clear()
	c.subscriptions.Clear()
	c.services.Clear()
	c.clients.Clear()
	c.waitables.Clear()
	c.guardConditions.Clear()
}

// Size reports the total number of indexed entries across all kinds.
func (c *Collection) Size() int {
	return c.timers.Size() +
		c.subscriptions.Size() +
		c.services.Size() +
		c.clients.Size() +
		c.waitables.Size() +
		c.guardConditions.Size()
}

// Handles returns the identity handles indexed under the given kind, in
// key order. For waitables these are the entities' own identities, not
// their underlying wait handles; see WaitableHandles.
func (c *Collection) Handles(k api.Kind) []api.Handle {
	m := c.byKind(k)
	if m == nil {
		return nil
	}
	return m.Keys()
}

// WaitableHandles enumerates the underlying wait handles of every live
// indexed waitable, for registration with the wait primitive.
func (c *Collection) WaitableHandles() []api.Handle {
	var out []api.Handle
	it := c.waitables.Iterator()
	for it.Next() {
		ent, ok := it.Value().Entity.Upgrade()
		if !ok {
			continue
		}
		if w, ok := ent.Value().(api.Waitable); ok {
			out = append(out, w.Handles()...)
		}
		ent.Release()
	}
	return out
}

// Rebuild replaces the collection's contents from the given groups. Dead
// groups are skipped silently; groups whose admission flag is false at
// call time contribute nothing for this cycle. The new mappings are
// swapped in only after enumeration completes, so a failed group
// mid-enumeration just yields fewer entries, never partial ones.
func (c *Collection) Rebuild(groups []arc.Weak[*group.CallbackGroup]) {
	next := newKindMaps()

	for _, wg := range groups {
		g, ok := wg.Upgrade()
		if !ok {
			continue
		}
		if !g.Value().CanBeTakenFrom().Load() {
			g.Release()
			continue
		}

		owner := wg
		insert := func(m *treemap.Map[api.Handle, Entry]) func(*arc.Ref[api.Entity]) {
			return func(r *arc.Ref[api.Entity]) {
				m.Put(r.Value().Handle(), Entry{
					Entity: r.Downgrade(),
					Group:  owner,
				})
			}
		}
		g.Value().CollectAll(group.Visitor{
			Timer:          insert(next.timers),
			Subscription:   insert(next.subscriptions),
			Service:        insert(next.services),
			Client:         insert(next.clients),
			Waitable:       insert(next.waitables),
			GuardCondition: insert(next.guardConditions),
		})
		g.Release()
	}

	c.kindMaps = next

	if c.cfg.metrics != nil {
		c.cfg.metrics.Inc(MetricRebuilds)
		c.cfg.metrics.Add(MetricIndexed, int64(c.Size()))
	}
	c.cfg.log.Debug().
		Int("groups", len(groups)).
		Int("indexed", c.Size()).
		Msg("collection rebuilt")
}
