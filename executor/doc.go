// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package executor implements the readiness-resolution core of the
// callback executor: a handle-indexed Collection of all entities reachable
// from a set of callback groups, and a Resolver that turns a wait result
// into an ordered queue of admitted work items.
//
// Rebuild and Resolve against the same Collection must be serialized by
// the caller (typically both run on the executor's loop goroutine). The
// blocking wait between them is external; this package never blocks.
package executor
