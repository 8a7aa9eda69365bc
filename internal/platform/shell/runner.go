// Package shell runs pipeline steps: shell command lines through sh -c,
// and native steps in-process, with the same timing and reporting.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"shabnam/internal/core/domain"
	"shabnam/internal/core/ports"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
)

const (
	DefaultShell      = "/bin/sh"
	DefaultPreviewLen = 100

	// waitDelay bounds how long Wait blocks on pipes held open by
	// grandchildren after the shell itself was killed.
	waitDelay = 2 * time.Second
)

// Options configures a Runner.
type Options struct {
	Shell       string
	StepTimeout time.Duration // 0 = no timeout
	PreviewLen  int
}

// Runner executes one step at a time.
type Runner struct {
	logger   logx.Logger
	reporter ports.StepReporter
	opts     Options

	mu sync.Mutex // un solo paso a la vez
}

var _ ports.StepRunner = (*Runner)(nil)

// NewRunner creates a Runner. reporter may be nil.
func NewRunner(logger logx.Logger, reporter ports.StepReporter, opts Options) *Runner {
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	if opts.PreviewLen <= 0 {
		opts.PreviewLen = DefaultPreviewLen
	}
	return &Runner{
		logger:   logger.With("component", "runner"),
		reporter: reporter,
		opts:     opts,
	}
}

// Run is a convenience wrapper that executes a single command line.
func (r *Runner) Run(ctx context.Context, line, dir, description string) (*domain.StepResult, error) {
	return r.Execute(ctx, domain.Step{
		Name:        description,
		Description: description,
		Dir:         dir,
		Command:     line,
	})
}

// Execute runs step and blocks until it finishes.
func (r *Runner) Execute(ctx context.Context, step domain.Step) (*domain.StepResult, error) {
	if err := step.Validate(); err != nil {
		return nil, &CommandError{
			Step:        step.Name,
			Description: step.Description,
			Kind:        errors.ErrCommandException,
			Err:         err,
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.StepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.StepTimeout)
		defer cancel()
	}

	started := time.Now()
	if r.reporter != nil {
		r.reporter.StepStarted(step, started)
	}

	var (
		result *domain.StepResult
		err    error
	)
	if step.IsNative() {
		result, err = r.runNative(ctx, step, started)
	} else {
		result, err = r.runCommand(ctx, step, started)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Info("step completed successfully",
		"step", step.Name,
		"duration", result.Duration.String(),
	)
	if r.reporter != nil {
		r.reporter.StepCompleted(step, result, result.Preview(r.opts.PreviewLen))
	}
	return result, nil
}

func (r *Runner) runCommand(ctx context.Context, step domain.Step, started time.Time) (*domain.StepResult, error) {
	display := step.Display()
	r.logger.Debug("executing step command",
		"step", step.Name,
		"dir", step.Dir,
		"command", display,
		"timeout", r.opts.StepTimeout.String(),
	)

	cmd := exec.CommandContext(ctx, r.opts.Shell, "-c", step.Command)
	cmd.Dir = step.Dir
	cmd.WaitDelay = waitDelay
	isolate(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	duration := time.Since(started)

	result := &domain.StepResult{
		Stdout:    domain.Redact(stdout.String(), step.Redact),
		Stderr:    domain.Redact(stderr.String(), step.Redact),
		StartedAt: started,
		Duration:  duration,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr == nil {
		return result, nil
	}

	cmdErr := &CommandError{
		Step:        step.Name,
		Description: step.Description,
		Command:     display,
		Duration:    duration,
		ExitCode:    result.ExitCode,
		Stderr:      result.Stderr,
	}

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		cmdErr.Kind = errors.ErrCommandException
		cmdErr.Err = contextCause(ctx)
	case errors.As(runErr, &exitErr):
		cmdErr.Kind = errors.ErrCommandFailed
		cmdErr.Err = runErr
	default:
		cmdErr.Kind = errors.ErrCommandException
		cmdErr.Err = runErr
	}

	r.logger.Warn("subprocess exited with error",
		"step", step.Name,
		"exit_code", result.ExitCode,
		"error", runErr.Error(),
		"duration", duration.String(),
	)
	return nil, cmdErr
}

func (r *Runner) runNative(ctx context.Context, step domain.Step, started time.Time) (result *domain.StepResult, err error) {
	r.logger.Debug("executing native step", "step", step.Name, "dir", step.Dir)

	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = &CommandError{
				Step:        step.Name,
				Description: step.Description,
				Command:     step.Display(),
				Duration:    time.Since(started),
				ExitCode:    -1,
				Kind:        errors.ErrCommandException,
				Err:         fmt.Errorf("panic: %v", rec),
			}
		}
	}()

	out, fnErr := step.Func(ctx)
	duration := time.Since(started)
	if fnErr != nil {
		kind := errors.ErrCommandFailed
		if ctx.Err() != nil {
			kind = errors.ErrCommandException
			fnErr = errors.Join(contextCause(ctx), fnErr)
		}
		r.logger.Warn("native step failed",
			"step", step.Name,
			"error", fnErr.Error(),
			"duration", duration.String(),
		)
		return nil, &CommandError{
			Step:        step.Name,
			Description: step.Description,
			Command:     step.Display(),
			Duration:    duration,
			ExitCode:    -1,
			Stderr:      fnErr.Error(),
			Kind:        kind,
			Err:         fnErr,
		}
	}

	return &domain.StepResult{
		Stdout:    out,
		StartedAt: started,
		Duration:  duration,
	}, nil
}

// contextCause maps a finished context to a shabnam sentinel.
func contextCause(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrTimeout, "step timeout exceeded")
	}
	return errors.Wrap(errors.ErrAborted, "interrupted")
}
