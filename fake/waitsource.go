// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-exec/api"

// WaitSource replays a scripted sequence of wait results, standing in for
// the external poll primitive. Once the script is exhausted it reports
// timeouts.
type WaitSource struct {
	script []*api.WaitResult
	next   int
}

// NewWaitSource creates a source replaying results in order.
func NewWaitSource(results ...*api.WaitResult) *WaitSource {
	return &WaitSource{script: results}
}

// Wait returns the next scripted result.
func (s *WaitSource) Wait() *api.WaitResult {
	if s.next >= len(s.script) {
		return &api.WaitResult{Kind: api.WaitResultTimeout}
	}
	res := s.script[s.next]
	s.next++
	return res
}
