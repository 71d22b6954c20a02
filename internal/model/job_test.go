package model

import (
	"testing"
	"time"
)

func TestJob_GetElapsedString(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		elapsed  time.Duration
		finished bool
		expected string
	}{
		{0, false, "—"},
		{30 * time.Second, true, "00:30"},
		{90 * time.Second, true, "01:30"},
		{time.Hour, true, "01:00:00"},
		{3661 * time.Second, true, "01:01:01"},
		{-time.Second, true, "—"},
	}

	for _, test := range tests {
		job := &Job{StartedAt: start}
		if test.finished {
			job.FinishedAt = start.Add(test.elapsed)
		}
		result := job.GetElapsedString()
		if result != test.expected {
			t.Errorf("GetElapsedString() with elapsed=%v = %s, expected %s", test.elapsed, result, test.expected)
		}
	}
}

func TestJob_GetDisplayName(t *testing.T) {
	tests := []struct {
		outputPath string
		filename   string
		input      string
		expected   string
	}{
		{"/home/u/Documents/Figurinify/robot.glb", "robot.glb", "x", "robot.glb"},
		{`C:\Users\u\Documents\Figurinify\cat.glb`, "", "x", "cat.glb"},
		{"", "model.glb", "v2-abc", "model.glb"},
		{"", "", "  v2-abc  ", "v2-abc"},
	}

	for _, test := range tests {
		job := &Job{
			Input:      test.input,
			OutputPath: test.outputPath,
			Target:     ResolvedTarget{Filename: test.filename},
		}
		result := job.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with path='%s', filename='%s', input='%s' = '%s', expected '%s'",
				test.outputPath, test.filename, test.input, result, test.expected)
		}
	}
}

func TestResolvedTarget_IsZero(t *testing.T) {
	if !(ResolvedTarget{}).IsZero() {
		t.Error("empty target should be zero")
	}
	if (ResolvedTarget{FileURL: "https://a.b/x.glb", Filename: "x.glb"}).IsZero() {
		t.Error("filled target should not be zero")
	}
}
