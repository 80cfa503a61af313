// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package group implements callback groups: the unit of ownership and
// mutual-exclusion policy over schedulable entities. A group holds weak
// references to its members and an atomic admission flag read by the
// readiness core and written by the external dispatcher.
package group
