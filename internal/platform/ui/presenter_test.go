// internal/platform/ui/presenter_test.go
package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"shabnam/internal/core/domain"
	"shabnam/internal/testutil"
)

var sampleStep = domain.Step{Name: "findomain", Description: "findomain scan"}

func TestRawPresenter_StepLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewRawPresenterWithWriter(&buf)

	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
	p.StepStarted(sampleStep, at)
	p.StepCompleted(sampleStep, &domain.StepResult{Duration: 1234 * time.Millisecond}, "a.example.com")
	p.StepCompleted(sampleStep, &domain.StepResult{Duration: time.Second}, "")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertLines(t, lines, []string{
		"[2026-03-04 05:06:07] Starting: findomain scan",
		"✓ Completed: findomain scan in 1.23s",
		"  Output preview: a.example.com...",
		"✓ Completed: findomain scan in 1.00s",
	}, "step lines")
}

func TestRawPresenter_StartAndFinish(t *testing.T) {
	var buf bytes.Buffer
	p := NewRawPresenterWithWriter(&buf)

	p.Start(RunInfo{Domain: "example.com", Approach: "fast"})
	p.Finish(RunStats{
		Domain:   "example.com",
		Root:     "/root/recon_framework/example.com",
		Duration: 90 * time.Second,
		Steps:    9,
		Results:  []ResultCount{{File: "alive_subs.txt", Lines: 2}},
	})

	out := buf.String()
	testutil.AssertContains(t, out, "Starting Shabnam for example.com (Fast approach)\n", "banner")
	testutil.AssertContains(t, out, "Running FAST approach\n", "approach line")
	testutil.AssertContains(t, out, "Steps run: 9", "steps")
	testutil.AssertContains(t, out, "1m30s", "duration")
	testutil.AssertContains(t, out, "alive_subs.txt:", "result file")
	testutil.AssertContains(t, out, "Shabnam completed for example.com! Check /root/recon_framework/example.com for outputs.", "finish line")
}

func TestRawPresenter_ErrorAndWarning(t *testing.T) {
	var buf bytes.Buffer
	p := NewRawPresenterWithWriter(&buf)

	p.Error("✗ Failed: subfinder scan after 0.50s\n  Error: boom")
	p.Error("GitHub API key is required for slow approach.")
	p.Warning("wildcard DNS detected")
	p.Info("plain")

	out := buf.String()
	testutil.AssertContains(t, out, "✗ Failed: subfinder scan after 0.50s\n  Error: boom\n", "step failure line")
	testutil.AssertNotContains(t, out, "ERROR: ✗", "step failures carry no prefix")
	testutil.AssertContains(t, out, "ERROR: GitHub API key is required for slow approach.\n", "error line")
	testutil.AssertContains(t, out, "⚠ wildcard DNS detected\n", "warning line")
	testutil.AssertContains(t, out, "plain\n", "info line")
}

func TestRawPresenter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewRawPresenterWithWriter(&buf)

	p.Table("Tools", []string{"Tool", "Status"}, [][]string{{"findomain", "✓ installed"}, {"ffuf", "✗ missing"}})

	out := buf.String()
	testutil.AssertContains(t, out, "Tools\n", "title")
	testutil.AssertContains(t, out, "findomain", "row 1")
	testutil.AssertContains(t, out, "✗ missing", "row 2")
	testutil.AssertNotContains(t, out, "\x1b[", "no ANSI codes")
}

func TestPTermPresenter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPTermPresenterWithWriter(&buf)

	p.Start(RunInfo{Domain: "example.com", Approach: "slow"})
	p.StepStarted(sampleStep, time.Now())
	p.StepCompleted(sampleStep, &domain.StepResult{Duration: 2 * time.Second}, "x.example.com")
	p.Error("✗ Exception in: findomain scan")
	p.Table("", []string{"Tool"}, [][]string{{"jq"}})
	p.Finish(RunStats{Domain: "example.com", Root: "/tmp/r"})
	testutil.AssertNoError(t, p.Close(), "Close")

	out := buf.String()
	testutil.AssertContains(t, out, "Starting Shabnam for example.com (Slow approach)", "banner")
	testutil.AssertContains(t, out, "Running SLOW approach", "approach")
	testutil.AssertContains(t, out, "Starting: findomain scan", "started")
	testutil.AssertContains(t, out, "✓ Completed: findomain scan in 2.00s", "completed")
	testutil.AssertContains(t, out, "  Output preview: x.example.com...", "preview")
	testutil.AssertContains(t, out, "✗ Exception in: findomain scan", "error")
	testutil.AssertContains(t, out, "jq", "table")
	testutil.AssertContains(t, out, "Shabnam completed for example.com! Check /tmp/r for outputs.", "finish")
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status Status
		name   string
		symbol string
	}{
		{StatusSuccess, "success", "✓"},
		{StatusWarning, "warning", "⚠"},
		{StatusError, "error", "✗"},
		{StatusSkipped, "skipped", "⊘"},
		{Status(42), "unknown", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.status.String(), tt.name, "String")
			testutil.AssertEqual(t, tt.status.Symbol(), tt.symbol, "Symbol")
			testutil.AssertNotNil(t, tt.status.Style(), "Style")
		})
	}
}

func TestFormatDuration(t *testing.T) {
	testutil.AssertEqual(t, formatDuration(250*time.Millisecond), "250ms", "ms")
	testutil.AssertEqual(t, formatDuration(1500*time.Millisecond), "1.5s", "seconds")
	testutil.AssertEqual(t, formatDuration(125*time.Second), "2m5s", "minutes")
}
