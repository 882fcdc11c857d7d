package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/cube/internal/solve"
	"github.com/npratt/cube/internal/stats"
	"github.com/npratt/cube/internal/timer"
)

const (
	// paneFrame is the horizontal and vertical cells taken by a pane border.
	paneFrame = 2
	// panePadding is the horizontal padding inside a pane.
	panePadding = 2

	minTimerWidth   = 16
	minSideWidth    = 12
	sparklineHeight = 3
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	scramble := m.renderScramble()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(scramble) - lipgloss.Height(footer)
	body := m.renderBody(max(bodyHeight, paneFrame+2))

	return lipgloss.JoinVertical(lipgloss.Left, scramble, body, footer)
}

// renderScramble renders the pending scramble across the full width.
func (m model) renderScramble() string {
	content := styles.Title.Render("Scramble") + "\n" + styles.Scramble.Render(m.ctrl.Scramble())
	return styles.Pane.Width(max(m.width-paneFrame, 1)).Render(content)
}

// renderBody lays out the timer, times and stats panes side by side.
func (m model) renderBody(height int) string {
	side := m.timesWidth
	timerWidth := m.width - 3*paneFrame - 2*side
	if timerWidth < minTimerWidth {
		side = max(minSideWidth, (m.width-3*paneFrame-minTimerWidth)/2)
		timerWidth = max(m.width-3*paneFrame-2*side, 1)
	}

	inner := height - paneFrame

	timerPane := styles.Pane.Width(timerWidth).Height(inner).
		Render(m.renderTimer(timerWidth-panePadding, inner))
	timesPane := styles.Pane.Width(side).Height(inner).
		Render(m.renderTimes(side-panePadding, inner))
	statsPane := styles.Pane.Width(side).Height(inner).
		Render(m.renderStats(side-panePadding, inner))

	return lipgloss.JoinHorizontal(lipgloss.Top, timerPane, timesPane, statsPane)
}

// renderTimer renders the clock centered in its pane, colored by phase.
func (m model) renderTimer(width, height int) string {
	clock := FormatTime(m.ctrl.Elapsed())

	var style lipgloss.Style
	var label string
	switch m.ctrl.Phase().(type) {
	case timer.Running:
		style, label = styles.PhaseRunning, "running"
	case timer.Paused:
		style, label = styles.PhasePaused, "stopped"
	default:
		style, label = styles.PhaseIdle, "ready"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(clock),
		styles.PhaseLabel.Render(label),
	)

	title := styles.Title.Render("Timer")
	body := lipgloss.Place(max(width, 1), max(height-1, 1), lipgloss.Center, lipgloss.Center, content)
	return title + "\n" + body
}

// renderTimes renders the session's times, keeping the most recent lines
// when they do not fit.
func (m model) renderTimes(width, height int) string {
	solves := m.ctrl.Session().Solves()
	times := make([]string, len(solves))
	for i, s := range solves {
		times[i] = styleSolve(s)
	}

	lines := SegmentTimes(times, max(width, 1))
	if avail := height - 1; avail > 0 && len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}

	return styles.Title.Render("Times") + "\n" + strings.Join(lines, "\n")
}

// styleSolve renders one times-pane entry, DNFs in the error color.
func styleSolve(s solve.Solve) string {
	if s.IsDNF() {
		return styles.DNF.Render(FormatSolve(s))
	}
	return styles.Time.Render(FormatSolve(s))
}

// renderStats renders the summary line, best and worst, and a sparkline of
// the most recent times.
func (m model) renderStats(width, height int) string {
	sum := m.ctrl.Summary()

	lines := []string{
		styles.Title.Render("Stats"),
		styles.Stat.Render(statsLine(sum)),
		fmt.Sprintf("best: %s  worst: %s",
			formatOptional(sum.Best, "-"), formatOptional(sum.Worst, "-")),
		fmt.Sprintf("solves: %d  dnf: %d", sum.Count, sum.DNFs),
	}

	if spark := m.renderSparkline(width, height-len(lines)-1); spark != "" {
		lines = append(lines, "", spark)
	}

	return strings.Join(lines, "\n")
}

// statsLine renders the mean and standard deviation of a summary.
func statsLine(sum stats.Summary) string {
	return fmt.Sprintf("avg: %s (σ = %s)",
		formatOptional(sum.Mean, "DNF"), formatOptional(sum.StdDev, "-1"))
}

// renderSparkline plots up to recentTimes of the latest times in seconds.
// It returns "" when there is nothing to plot or no room.
func (m model) renderSparkline(width, height int) string {
	if m.recentTimes == 0 || width < 1 || height < 1 {
		return ""
	}

	times := m.ctrl.Session().Times()
	if len(times) == 0 {
		return ""
	}
	if len(times) > m.recentTimes {
		times = times[len(times)-m.recentTimes:]
	}

	values := make([]float64, len(times))
	for i, t := range times {
		values[i] = t.Seconds()
	}

	sl := sparkline.New(width, min(height, sparklineHeight))
	sl.PushAll(values)
	sl.Draw()
	return styles.Sparkline.Render(sl.View())
}

// renderFooter renders key hints and, when set, the last error.
func (m model) renderFooter() string {
	footer := styles.Footer.Render(m.help.View(m.keys))
	if m.statusErr != "" {
		footer += "\n" + styles.Error.Render("error: "+m.statusErr)
	}
	return footer
}
