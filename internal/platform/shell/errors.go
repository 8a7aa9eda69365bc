package shell

import (
	"fmt"
	"strings"
	"time"

	"shabnam/internal/platform/errors"
)

// CommandError describes a step that failed or could not be run.
type CommandError struct {
	Step        string
	Description string
	Command     string
	Duration    time.Duration
	ExitCode    int
	Stderr      string

	// Kind is ErrCommandFailed or ErrCommandException.
	Kind error
	Err  error
}

func (e *CommandError) Error() string {
	if errors.Is(e.Kind, errors.ErrCommandException) {
		detail := ""
		if e.Err != nil {
			detail = e.Err.Error()
		}
		return fmt.Sprintf("✗ Exception in: %s\n  Error: %s", e.Description, detail)
	}
	return fmt.Sprintf("✗ Failed: %s after %.2fs\n  Error: %s",
		e.Description, e.Duration.Seconds(), strings.TrimRight(e.Stderr, "\n"))
}

func (e *CommandError) Unwrap() []error {
	out := []error{e.Kind}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}
