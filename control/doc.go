// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for the readiness core.
// Provides a concurrent-safe counter registry plus gauge probes, consumed
// by the executor package when wired through options.
package control
