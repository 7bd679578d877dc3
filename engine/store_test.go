package engine

import (
	"testing"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()

	s.SetComponent(1, 10)
	s.SetComponent(2, 20)
	s.SetComponent(1, 11)

	if got := s.CountEntities(); got != 2 {
		t.Errorf("Expected 2 entities, got %d", got)
	}
	if v, ok := s.GetComponent(1); !ok || v != 11 {
		t.Errorf("Expected updated value 11, got %d (ok=%v)", v, ok)
	}

	s.RemoveEntity(1)
	if s.HasEntity(1) {
		t.Error("Expected entity 1 to be removed")
	}
	if got := s.GetAllEntities(); len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected [2], got %v", got)
	}

	// Removing twice is harmless
	s.RemoveEntity(1)
	if got := s.CountEntities(); got != 1 {
		t.Errorf("Expected 1 entity, got %d", got)
	}
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore[string]()
	for i := Entity(1); i <= 5; i++ {
		s.SetComponent(i, "x")
	}
	s.RemoveEntity(2)

	want := []Entity{1, 3, 4, 5}
	got := s.GetAllEntities()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestStoreUpdateInPlace(t *testing.T) {
	type counter struct{ N int }
	s := NewStore[counter]()
	s.SetComponent(7, counter{N: 1})

	if !s.Update(7, func(c *counter) { c.N += 4 }) {
		t.Fatal("Expected update to find entity")
	}
	if c, _ := s.GetComponent(7); c.N != 5 {
		t.Errorf("Expected 5, got %d", c.N)
	}
	if s.Update(8, func(c *counter) { c.N = 99 }) {
		t.Error("Expected update of missing entity to report false")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(1, 1)
	s.SetComponent(2, 2)
	s.ClearAllComponents()
	if s.CountEntities() != 0 || s.HasEntity(1) {
		t.Error("Expected empty store after clear")
	}
}
