// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package arc provides atomically counted strong/weak reference cells with
// deterministic expiry: once every strong handle has been released, weak
// handles stop upgrading, regardless of what the garbage collector does.
// This is the liveness discipline the readiness core is built on: observe
// without extending lifetime, tolerate destruction at any time.
package arc
