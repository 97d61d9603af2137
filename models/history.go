package models

import (
	"time"

	"github.com/google/uuid"
)

type HistoryEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	Type      FileType  `json:"type"`
	Success   bool      `json:"success"`
	Profile   string    `json:"profile"`
	Size      int64     `json:"size"`
}

func NewHistoryEntry(source, output string, fileType FileType, success bool, profile string, size int64) HistoryEntry {
	return HistoryEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Source:    source,
		Output:    output,
		Type:      fileType,
		Success:   success,
		Profile:   profile,
		Size:      size,
	}
}
