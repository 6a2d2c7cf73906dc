package domain

import "time"

// ProgramSnapshot is the last program list fetched from the document store
type ProgramSnapshot struct {
	Programs  []Program `json:"programs"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store handles the local cache (BoltDB + memory).
// The program screen reads it on activation so the list renders before the
// first fetch returns.
type Store interface {
	GetPrograms() (ProgramSnapshot, bool)
	SavePrograms(snapshot ProgramSnapshot) error

	InvalidatePrograms()
	InvalidateAll()

	Close() error
}
