package status

import (
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Error("Expected cached pointer for repeated key")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Unexpected Has result")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %v", f.Get())
	}
	f.Set(1.5)
	if got := f.Add(2.25); got != 3.75 {
		t.Errorf("Expected 3.75, got %v", got)
	}
}

func TestRegistryLine(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(MetricKilled).Store(3)
	r.Ints.Get(MetricCreepsAlive).Store(7)
	r.Floats.Get(MetricSimTime).Set(12.34)

	want := "creeps.alive=7 creeps.killed=3 loop.sim_seconds=12.3"
	if got := r.Line(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}
