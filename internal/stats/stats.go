// Package stats derives aggregate measures from a session's solve times.
//
// The functions take only time-bearing solves. DNF solves must be filtered
// out by the caller (session.Times does this).
package stats

import (
	"math"
	"time"

	"github.com/npratt/cube/internal/session"
)

// Mean returns the arithmetic mean of times, truncated to the nanosecond.
// It returns false when times is empty.
func Mean(times []time.Duration) (time.Duration, bool) {
	if len(times) == 0 {
		return 0, false
	}
	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	return sum / time.Duration(len(times)), true
}

// PopulationStdDev returns the population standard deviation of times at
// millisecond resolution. It returns false when times is empty.
//
// Each deviation from the mean is truncated to whole milliseconds before
// squaring, the summed squares are integer-divided by the count, and the
// square root of that is truncated back to whole milliseconds.
func PopulationStdDev(times []time.Duration) (time.Duration, bool) {
	mean, ok := Mean(times)
	if !ok {
		return 0, false
	}

	var sumSquares uint64
	for _, t := range times {
		diff := t - mean
		if diff < 0 {
			diff = -diff
		}
		ms := uint64(diff.Milliseconds())
		sumSquares += ms * ms
	}
	variance := sumSquares / uint64(len(times))

	std := uint64(math.Sqrt(float64(variance)))
	return time.Duration(std) * time.Millisecond, true
}

// Best returns the fastest time. It returns false when times is empty.
func Best(times []time.Duration) (time.Duration, bool) {
	if len(times) == 0 {
		return 0, false
	}
	best := times[0]
	for _, t := range times[1:] {
		best = min(best, t)
	}
	return best, true
}

// Worst returns the slowest time. It returns false when times is empty.
func Worst(times []time.Duration) (time.Duration, bool) {
	if len(times) == 0 {
		return 0, false
	}
	worst := times[0]
	for _, t := range times[1:] {
		worst = max(worst, t)
	}
	return worst, true
}

// Summary is a snapshot of a session's statistics. Optional measures are nil
// when the session has no timed solves.
type Summary struct {
	Count  int            `json:"count"`
	DNFs   int            `json:"dnfs"`
	Mean   *time.Duration `json:"mean_ns,omitempty"`
	StdDev *time.Duration `json:"std_dev_ns,omitempty"`
	Best   *time.Duration `json:"best_ns,omitempty"`
	Worst  *time.Duration `json:"worst_ns,omitempty"`
}

// Summarize computes a Summary from the session's current content.
func Summarize(s *session.Session) Summary {
	times := s.Times()
	return Summary{
		Count:  s.Len(),
		DNFs:   s.DNFCount(),
		Mean:   optional(Mean(times)),
		StdDev: optional(PopulationStdDev(times)),
		Best:   optional(Best(times)),
		Worst:  optional(Worst(times)),
	}
}

func optional(d time.Duration, ok bool) *time.Duration {
	if !ok {
		return nil
	}
	return &d
}
