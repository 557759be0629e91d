// Package domain contains core domain types for the healthbot application.
package domain

import (
	"time"
)

// Entry is a single recorded chat exchange. Entries are appended to the
// history store in chronological order and are never mutated individually;
// the history can only grow or be cleared as a whole.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Reply     string    `json:"reply"`
	AI        bool      `json:"ai"`
}

// NewEntry builds a history entry for one completed exchange, stamped
// with the current UTC time.
func NewEntry(userMessage, reply string, usedAI bool) Entry {
	return Entry{
		Timestamp: time.Now().UTC(),
		User:      userMessage,
		Reply:     reply,
		AI:        usedAI,
	}
}
