package tui

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	ui := New(nil)
	if ui.refreshInterval != defaultRefreshInterval {
		t.Errorf("refreshInterval = %v, want %v", ui.refreshInterval, defaultRefreshInterval)
	}
	if ui.recentTimes != defaultRecentTimes {
		t.Errorf("recentTimes = %d, want %d", ui.recentTimes, defaultRecentTimes)
	}
	if ui.timesWidth != defaultTimesWidth {
		t.Errorf("timesWidth = %d, want %d", ui.timesWidth, defaultTimesWidth)
	}
}

func TestOptions(t *testing.T) {
	ui := New(nil,
		WithRefreshInterval(50*time.Millisecond),
		WithRecentTimes(5),
		WithTimesWidth(24),
	)
	if ui.refreshInterval != 50*time.Millisecond {
		t.Errorf("refreshInterval = %v, want 50ms", ui.refreshInterval)
	}
	if ui.recentTimes != 5 {
		t.Errorf("recentTimes = %d, want 5", ui.recentTimes)
	}
	if ui.timesWidth != 24 {
		t.Errorf("timesWidth = %d, want 24", ui.timesWidth)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	ui := New(nil,
		WithRefreshInterval(0),
		WithRecentTimes(-3),
		WithTimesWidth(0),
	)
	if ui.refreshInterval != defaultRefreshInterval {
		t.Errorf("refreshInterval = %v, want default", ui.refreshInterval)
	}
	if ui.recentTimes != 0 {
		t.Errorf("recentTimes = %d, want 0", ui.recentTimes)
	}
	if ui.timesWidth != defaultTimesWidth {
		t.Errorf("timesWidth = %d, want default", ui.timesWidth)
	}
}
