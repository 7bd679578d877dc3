package storage

import (
	"time"

	"github.com/google/uuid"
)

// RunRecord is one finished run
type RunRecord struct {
	ID         uuid.UUID
	Score      int
	Level      int
	Difficulty string
	FinishedAt time.Time
}

// NewRunRecord stamps a finished run with a fresh ID
func NewRunRecord(score, level int, difficulty string, finishedAt time.Time) RunRecord {
	return RunRecord{
		ID:         uuid.New(),
		Score:      score,
		Level:      level,
		Difficulty: difficulty,
		FinishedAt: finishedAt.UTC(),
	}
}
