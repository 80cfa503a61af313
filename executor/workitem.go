// File: executor/workitem.go
// Author: momentics <momentics@gmail.com>
//
// Resolved, admitted unit of execution handed to the dispatcher.

package executor

import (
	"github.com/momentics/hioload-exec/api"
	"github.com/momentics/hioload-exec/arc"
	"github.com/momentics/hioload-exec/group"
)

// WorkItem is one admitted entity ready for dispatch. The strong entity
// reference guarantees the entity survives at least through dispatch;
// Group is nil when the owning group was destroyed before resolution.
// Payload is set for waitables only.
type WorkItem struct {
	Kind    api.Kind
	Entity  *arc.Ref[api.Entity]
	Group   *arc.Ref[*group.CallbackGroup]
	Payload any
}

// Release drops the item's references. The dispatcher calls this after
// the callback completes (and after restoring the group's admission flag).
func (it *WorkItem) Release() {
	if it.Entity != nil {
		it.Entity.Release()
		it.Entity = nil
	}
	if it.Group != nil {
		it.Group.Release()
		it.Group = nil
	}
}
