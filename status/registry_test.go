package status

import (
	"sync"
	"testing"
)

func TestGetReturnsSamePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(Frames)
	a.Add(3)
	if b := r.Ints.Get(Frames); b != a || b.Load() != 3 {
		t.Errorf("Expected cached counter at 3, got %d", b.Load())
	}
}

func TestRegistryConcurrentWrites(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(Ticks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(Ticks).Load(); got != 800 {
		t.Errorf("Expected 800 ticks, got %d", got)
	}
}

func TestConcurrentFirstLookupSharesMetric(t *testing.T) {
	r := NewRegistry()
	got := make([]*AtomicFloat, 8)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = r.Floats.Get(FrameMillis)
		}(i)
	}
	wg.Wait()
	for i, p := range got {
		if p != got[0] {
			t.Errorf("Expected goroutine %d to share the metric", i)
		}
	}
	if r.Floats.Count() != 1 {
		t.Errorf("Expected 1 float metric, got %d", r.Floats.Count())
	}
}

func TestSummarySorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(Ticks).Store(12)
	r.Ints.Get(Frames).Store(5)
	r.Floats.Get(FrameMillis).Set(1.5)
	r.Strings.Get(Scene).Store("game")

	want := "render.frame_ms=1.50 render.frames=5 scene.current=game sim.ticks=12"
	if got := r.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

func TestEmptyStringMetric(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
}
