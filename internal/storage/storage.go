// Package storage persists sessions to disk.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/npratt/cube/internal/config"
	"github.com/npratt/cube/internal/session"
	"github.com/npratt/cube/internal/solve"
)

// Store loads and saves a session.
type Store interface {
	Load(ctx context.Context) (*session.Session, error)
	Save(ctx context.Context, s *session.Session) error
	Close() error
}

// Open returns the store selected by cfg.Backend.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		return NewJSONStore(cfg.Path), nil
	case config.BackendSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Record is the stored form of a solve. TimeMS is nil for a DNF; Penalty is
// empty, "+2" or "DNF".
type Record struct {
	Scramble string `json:"scramble"`
	TimeMS   *int64 `json:"time_ms,omitempty"`
	Penalty  string `json:"penalty,omitempty"`
}

// NewRecord converts a solve to its stored form. Times are kept at
// millisecond resolution.
func NewRecord(s solve.Solve) Record {
	r := Record{Scramble: s.Scramble(), Penalty: s.Penalty().String()}
	if t, ok := s.Time(); ok {
		ms := t.Milliseconds()
		r.TimeMS = &ms
	}
	return r
}

// Solve validates the record and converts it back to a solve.
func (r Record) Solve() (solve.Solve, error) {
	penalty, err := solve.ParsePenalty(r.Penalty)
	if err != nil {
		return solve.Solve{}, err
	}
	var t *time.Duration
	if r.TimeMS != nil {
		d := time.Duration(*r.TimeMS) * time.Millisecond
		t = &d
	}
	return solve.Build(r.Scramble, t, penalty)
}

func recordsOf(s *session.Session) []Record {
	solves := s.Solves()
	records := make([]Record, len(solves))
	for i, sv := range solves {
		records[i] = NewRecord(sv)
	}
	return records
}

func sessionOf(records []Record) (*session.Session, error) {
	solves := make([]solve.Solve, 0, len(records))
	for i, r := range records {
		sv, err := r.Solve()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		solves = append(solves, sv)
	}
	return session.FromSolves(solves), nil
}
