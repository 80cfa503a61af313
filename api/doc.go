// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api defines the contracts of the hioload-exec readiness core:
// entity handles and kinds, the capability interfaces implemented by
// schedulable entities, and the wait-result shape handed back by an
// external poll primitive.
package api
