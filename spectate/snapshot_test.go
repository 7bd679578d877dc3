package spectate

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Error("Expected error for invalid msgpack")
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	data, err := Snapshot{GameOver: true, Score: 30}.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m["game_over"] != true {
		t.Errorf("Expected game_over key, got %v", m)
	}
	if _, ok := m["score"]; !ok {
		t.Errorf("Expected score key, got %v", m)
	}
}

