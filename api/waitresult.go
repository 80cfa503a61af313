// File: api/waitresult.go
// Author: momentics <momentics@gmail.com>
//
// Result shape reported by the external wait primitive. The core consumes
// this; it never performs the blocking wait itself.

package api

// WaitResultKind classifies the outcome of one wait call.
type WaitResultKind int

const (
	// WaitResultEmpty is the zero value; the wait never ran.
	WaitResultEmpty WaitResultKind = iota
	// WaitResultReady means one or more handles became signaled.
	WaitResultReady
	// WaitResultTimeout means the wait elapsed with nothing signaled.
	WaitResultTimeout
	// WaitResultError means the wait primitive itself failed.
	WaitResultError
)

func (k WaitResultKind) String() string {
	switch k {
	case WaitResultReady:
		return "ready"
	case WaitResultTimeout:
		return "timeout"
	case WaitResultError:
		return "error"
	default:
		return "empty"
	}
}

// WaitResult reports the signaled handles of one wait call, per kind, in
// the order the primitive reported them. A zero Handle slot is ignored.
//
// Data carries an opaque context from the wait primitive; the core hands
// it through to Waitable.IsReady untouched.
type WaitResult struct {
	Kind WaitResultKind

	Timers          []Handle
	Subscriptions   []Handle
	Services        []Handle
	Clients         []Handle
	GuardConditions []Handle

	Data any
}
