// Package spectate streams live run snapshots to websocket spectators.
package spectate

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the HUD state sent to spectators
type Snapshot struct {
	Seq        uint64 `msgpack:"seq"`
	Scene      string `msgpack:"scene"`
	Score      int    `msgpack:"score"`
	Level      int    `msgpack:"level"`
	Energy     int    `msgpack:"energy"`
	Lives      int    `msgpack:"lives"`
	GameOver   bool   `msgpack:"game_over"`
	Paused     bool   `msgpack:"paused"`
	Difficulty string `msgpack:"difficulty"`
	Enemies    int    `msgpack:"enemies"`
	SentAt     int64  `msgpack:"sent_at"` // Unix milliseconds
}

// Encode serializes the snapshot
func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
