package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/cube/internal/solve"
)

// FormatTime renders d as s.cc, m:ss.cc or h:mm:ss.cc. Centiseconds are
// truncated, not rounded.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	centis := (d % time.Second).Milliseconds() / 10

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, centis)
	default:
		return fmt.Sprintf("%d.%02d", seconds, centis)
	}
}

// FormatSolve renders one solve as shown in the times pane. Plus2 times carry a
// trailing "+".
func FormatSolve(s solve.Solve) string {
	t, ok := s.Time()
	if !ok {
		return "DNF"
	}
	if s.Penalty() == solve.Plus2 {
		return FormatTime(t) + "+"
	}
	return FormatTime(t)
}

// formatOptional renders d, or fallback when d is nil.
func formatOptional(d *time.Duration, fallback string) string {
	if d == nil {
		return fallback
	}
	return FormatTime(*d)
}

// SegmentTimes joins times with ", " into lines no wider than width display
// cells. A single time wider than width gets a line of its own.
func SegmentTimes(times []string, width int) []string {
	var lines []string
	var current strings.Builder

	for i, t := range times {
		addition := t
		if i < len(times)-1 {
			addition += ", "
		}

		if lipgloss.Width(current.String())+lipgloss.Width(addition) <= width {
			current.WriteString(addition)
			continue
		}

		if line := strings.TrimRight(current.String(), " "); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
		current.WriteString(addition)
	}

	if line := strings.TrimRight(current.String(), " "); line != "" {
		lines = append(lines, line)
	}
	return lines
}
