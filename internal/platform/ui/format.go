// internal/platform/ui/format.go
package ui

import (
	"fmt"
	"strings"
	"time"
)

// Textos compartidos por todos los presenters.

const startedLayout = "2006-01-02 15:04:05"

func startedLine(description string, at time.Time) string {
	return fmt.Sprintf("[%s] Starting: %s", at.Format(startedLayout), description)
}

func completedLine(description string, d time.Duration) string {
	return fmt.Sprintf("%s Completed: %s in %.2fs", IconSuccess, description, d.Seconds())
}

func previewLine(preview string) string {
	if preview == "" {
		return ""
	}
	return fmt.Sprintf("  Output preview: %s...", preview)
}

func bannerLine(info RunInfo) string {
	title := info.Approach
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return fmt.Sprintf("Starting Shabnam for %s (%s approach)", info.Domain, title)
}

func approachLine(info RunInfo) string {
	return fmt.Sprintf("Running %s approach", strings.ToUpper(info.Approach))
}

func finishLine(stats RunStats) string {
	return fmt.Sprintf("Shabnam completed for %s! Check %s for outputs.", stats.Domain, stats.Root)
}

// errorLine no agrega prefijo a los fallos de paso, que ya empiezan con ✗.
func errorLine(msg string) string {
	if strings.HasPrefix(msg, IconError+" ") {
		return msg
	}
	return "ERROR: " + msg
}

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

func summaryLines(stats RunStats) []string {
	lines := []string{
		fmt.Sprintf("Steps run: %d", stats.Steps),
		fmt.Sprintf("Duration:  %s", formatDuration(stats.Duration)),
	}
	for _, r := range stats.Results {
		lines = append(lines, fmt.Sprintf("%-22s %d hosts", r.File+":", r.Lines))
	}
	return lines
}
