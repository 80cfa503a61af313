// File: api/handle.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations for entity identity.

package api

// Handle is the opaque, stable identity of a schedulable entity. It is used
// only as a lookup key between the readiness core and the external wait
// primitive; it is never dereferenced. A zero Handle is never a valid
// identity and readiness scans skip it.
type Handle uintptr

// Kind enumerates the entity kinds tracked by the readiness core.
type Kind int

const (
	KindTimer Kind = iota
	KindSubscription
	KindService
	KindClient
	KindWaitable
	KindGuardCondition
)

func (k Kind) String() string {
	switch k {
	case KindTimer:
		return "timer"
	case KindSubscription:
		return "subscription"
	case KindService:
		return "service"
	case KindClient:
		return "client"
	case KindWaitable:
		return "waitable"
	case KindGuardCondition:
		return "guard_condition"
	default:
		return "unknown"
	}
}
