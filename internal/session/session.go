// Package session holds the chronological log of solves made in one run.
package session

import (
	"slices"
	"time"

	"github.com/npratt/cube/internal/solve"
)

// Session is an append-only, ordered log of solves. Insertion order is
// chronological order.
type Session struct {
	solves []solve.Solve
}

// New creates an empty Session.
func New() *Session {
	return &Session{}
}

// FromSolves creates a Session holding the given solves in order.
func FromSolves(solves []solve.Solve) *Session {
	return &Session{solves: slices.Clone(solves)}
}

// Save appends a solve to the end of the log.
func (s *Session) Save(sv solve.Solve) {
	s.solves = append(s.solves, sv)
}

// Solves returns the solves in the order they were saved.
func (s *Session) Solves() []solve.Solve {
	return slices.Clone(s.solves)
}

// Len returns the number of saved solves.
func (s *Session) Len() int {
	return len(s.solves)
}

// Times returns the times of every solve that has one, in order. DNF solves
// are skipped; Plus2 solves contribute their stored time.
func (s *Session) Times() []time.Duration {
	times := make([]time.Duration, 0, len(s.solves))
	for _, sv := range s.solves {
		if t, ok := sv.Time(); ok {
			times = append(times, t)
		}
	}
	return times
}

// DNFCount returns the number of solves that did not finish.
func (s *Session) DNFCount() int {
	n := 0
	for _, sv := range s.solves {
		if sv.IsDNF() {
			n++
		}
	}
	return n
}
