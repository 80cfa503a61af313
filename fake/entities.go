// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides scriptable entity and wait-source doubles for
// tests and examples.
package fake

import (
	"sync/atomic"

	"github.com/momentics/hioload-exec/api"
)

// Timer is a fake timer whose firing can be claimed exactly once per arm.
type Timer struct {
	handle api.Handle
	due    atomic.Bool
	fires  atomic.Int64
}

// NewTimer creates a timer; due controls whether the first AttemptFire
// succeeds.
func NewTimer(h api.Handle, due bool) *Timer {
	t := &Timer{handle: h}
	t.due.Store(due)
	return t
}

func (t *Timer) Handle() api.Handle { return t.handle }

// AttemptFire claims the pending firing. Only one caller wins per arm.
func (t *Timer) AttemptFire() bool {
	if t.due.CompareAndSwap(true, false) {
		t.fires.Add(1)
		return true
	}
	return false
}

// Arm makes the next AttemptFire succeed again.
func (t *Timer) Arm() { t.due.Store(true) }

// Fires reports how many claims succeeded so far.
func (t *Timer) Fires() int64 { return t.fires.Load() }

// Subscription is an identity-only fake.
type Subscription struct{ handle api.Handle }

func NewSubscription(h api.Handle) *Subscription { return &Subscription{handle: h} }

func (s *Subscription) Handle() api.Handle { return s.handle }

// Service is an identity-only fake.
type Service struct{ handle api.Handle }

func NewService(h api.Handle) *Service { return &Service{handle: h} }

func (s *Service) Handle() api.Handle { return s.handle }

// Client is an identity-only fake.
type Client struct{ handle api.Handle }

func NewClient(h api.Handle) *Client { return &Client{handle: h} }

func (c *Client) Handle() api.Handle { return c.handle }

// GuardCondition is an identity-only fake.
type GuardCondition struct{ handle api.Handle }

func NewGuardCondition(h api.Handle) *GuardCondition { return &GuardCondition{handle: h} }

func (g *GuardCondition) Handle() api.Handle { return g.handle }

// Waitable aggregates several underlying handles behind one entity.
// Readiness defaults to "never"; script it with ReadyFn or SetReady.
type Waitable struct {
	handle  api.Handle
	handles []api.Handle
	ready   atomic.Bool
	takes   atomic.Int64
	payload any

	// ReadyFn, when set, overrides the scripted ready bit.
	ReadyFn func(*api.WaitResult) bool
}

// NewWaitable creates a waitable identified by h, waiting on handles,
// yielding payload from TakePayload.
func NewWaitable(h api.Handle, handles []api.Handle, payload any) *Waitable {
	return &Waitable{handle: h, handles: handles, payload: payload}
}

func (w *Waitable) Handle() api.Handle    { return w.handle }
func (w *Waitable) Handles() []api.Handle { return w.handles }

// SetReady scripts the next IsReady answer.
func (w *Waitable) SetReady(ready bool) { w.ready.Store(ready) }

func (w *Waitable) IsReady(res *api.WaitResult) bool {
	if w.ReadyFn != nil {
		return w.ReadyFn(res)
	}
	return w.ready.Load()
}

// TakePayload hands out the scripted payload and counts the call.
func (w *Waitable) TakePayload() any {
	w.takes.Add(1)
	return w.payload
}

// Takes reports how many times TakePayload ran.
func (w *Waitable) Takes() int64 { return w.takes.Load() }
