package control_test

import (
	"testing"

	"github.com/momentics/hioload-exec/control"
)

func TestCountersAccumulate(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Inc("admitted")
	mr.Add("admitted", 2)
	if got := mr.Get("admitted"); got != 3 {
		t.Fatalf("admitted = %d, want 3", got)
	}
	if got := mr.Get("missing"); got != 0 {
		t.Fatalf("missing = %d, want 0", got)
	}
}

func TestUpdatedTracksCounterWrites(t *testing.T) {
	mr := control.NewMetricsRegistry()
	if !mr.Updated().IsZero() {
		t.Fatal("Updated must be zero before any counter write")
	}

	mr.Inc("rebuilds")
	first := mr.Updated()
	if first.IsZero() {
		t.Fatal("Updated must advance after a counter write")
	}

	mr.Add("rebuilds", 1)
	if mr.Updated().Before(first) {
		t.Fatal("Updated must not move backwards")
	}
}

func TestSnapshotMergesProbes(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Inc("rebuilds")
	mr.RegisterProbe("indexed", func() int64 { return 5 })

	snap := mr.Snapshot()
	if snap["rebuilds"] != 1 || snap["indexed"] != 5 {
		t.Fatalf("snapshot mismatch: %+v", snap)
	}
}
