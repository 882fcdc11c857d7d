// Package solve defines the validated record of a single timed attempt.
package solve

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Plus2Duration is the time added by a Plus2 penalty. A Plus2 solve's stored
// time already includes it.
const Plus2Duration = 2 * time.Second

// Validation errors returned by Build.
var (
	ErrTimeWithDNF      = errors.New("time must be absent when penalty is DNF")
	ErrNoTimeWithoutDNF = errors.New("time cannot be absent unless penalty is DNF")
	ErrUnknownPenalty   = errors.New("unknown penalty")
)

// Penalty is the penalty applied to a solve. The zero value means none.
type Penalty int

// Penalties.
const (
	NoPenalty Penalty = iota
	Plus2
	DNF
)

// String returns the display form: "", "+2" or "DNF".
func (p Penalty) String() string {
	switch p {
	case Plus2:
		return "+2"
	case DNF:
		return "DNF"
	default:
		return ""
	}
}

// ParsePenalty parses the forms accepted on the command line and in stored
// records. Matching is case-insensitive.
func ParsePenalty(s string) (Penalty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoPenalty, nil
	case "+2", "plus2":
		return Plus2, nil
	case "dnf":
		return DNF, nil
	default:
		return NoPenalty, fmt.Errorf("%w %q", ErrUnknownPenalty, s)
	}
}

// Solve is one attempt: the scramble it was made on, its time and its
// penalty. A Solve can only be obtained from Build and never changes.
type Solve struct {
	scramble string
	time     time.Duration
	hasTime  bool
	penalty  Penalty
}

// Build validates and returns a Solve. A DNF solve must not carry a time;
// every other solve must.
func Build(scramble string, t *time.Duration, penalty Penalty) (Solve, error) {
	switch penalty {
	case NoPenalty, Plus2, DNF:
	default:
		return Solve{}, fmt.Errorf("%w: %d", ErrUnknownPenalty, int(penalty))
	}
	if penalty == DNF {
		if t != nil {
			return Solve{}, ErrTimeWithDNF
		}
		return Solve{scramble: scramble, penalty: penalty}, nil
	}
	if t == nil {
		return Solve{}, ErrNoTimeWithoutDNF
	}
	return Solve{scramble: scramble, time: *t, hasTime: true, penalty: penalty}, nil
}

// Scramble returns the scramble the attempt was made on.
func (s Solve) Scramble() string { return s.scramble }

// Time returns the recorded time, and false for a DNF.
func (s Solve) Time() (time.Duration, bool) { return s.time, s.hasTime }

// Penalty returns the applied penalty.
func (s Solve) Penalty() Penalty { return s.penalty }

// IsDNF reports whether the attempt did not finish.
func (s Solve) IsDNF() bool { return s.penalty == DNF }
