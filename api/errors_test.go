package api_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/momentics/hioload-exec/api"
)

func TestErrorMessage(t *testing.T) {
	e := api.NewError(api.ErrCodeWaitFailed, "poll failed")
	if e.Error() != "poll failed" {
		t.Fatalf("Error() = %q, want bare message without context", e.Error())
	}

	e.WithContext("handles", 3)
	msg := e.Error()
	if !strings.Contains(msg, "poll failed") || !strings.Contains(msg, "handles") {
		t.Fatalf("Error() = %q, want message plus context", msg)
	}
}

func TestWithContextChaining(t *testing.T) {
	e := (&api.Error{Code: api.ErrCodeNotFound, Message: "no entry"}).
		WithContext("handle", 7).
		WithContext("kind", "timer")
	if e.Context["handle"] != 7 || e.Context["kind"] != "timer" {
		t.Fatalf("context not accumulated: %+v", e.Context)
	}
}

func TestUnwrapMatchesSentinels(t *testing.T) {
	cases := []struct {
		code api.ErrorCode
		want error
	}{
		{api.ErrCodeInvalidArgument, api.ErrInvalidArgument},
		{api.ErrCodeNotFound, api.ErrNotFound},
		{api.ErrCodeWaitFailed, api.ErrWaitFailed},
	}
	for _, c := range cases {
		err := api.NewError(c.code, "wrapped")
		if !errors.Is(err, c.want) {
			t.Fatalf("code %d must match sentinel %v", c.code, c.want)
		}
	}

	if errors.Is(api.NewError(api.ErrCodeInternal, "x"), api.ErrWaitFailed) {
		t.Fatal("internal errors must not match a sentinel")
	}
}
