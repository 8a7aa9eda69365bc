// internal/core/usecases/pipeline_test.go
package usecases

import (
	"context"
	"path/filepath"
	"testing"

	"shabnam/internal/core/domain"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
	"shabnam/internal/platform/shell"
	"shabnam/internal/testutil"
)

// chain arma n pasos donde cada uno lee la salida del anterior.
func chain(dir string, names ...string) []domain.Step {
	steps := make([]domain.Step, 0, len(names))
	prev := ""
	for _, name := range names {
		out := filepath.Join(dir, name+".txt")
		step := domain.Step{
			Name:        name,
			Description: name + " step",
			Dir:         dir,
			Command:     "echo " + name + " > " + out,
			Outputs:     []string{out},
		}
		if prev != "" {
			step.Inputs = []string{prev}
		}
		steps = append(steps, step)
		prev = out
	}
	return steps
}

func TestPipeline_RunsInOrder(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}

	p := NewPipeline(PipelineOptions{
		Name:   "test",
		Steps:  chain(dir, "one", "two", "three"),
		Runner: runner,
		Logger: logx.Discard(),
	})

	res, err := p.Run(context.Background())
	testutil.AssertNoError(t, err, "pipeline should succeed")
	testutil.AssertLines(t, runner.executed, []string{"one", "two", "three"}, "execution order")
	testutil.AssertEqual(t, res.Completed, 3, "completed steps")
	testutil.AssertEqual(t, res.Total, 3, "total steps")
	testutil.AssertEqual(t, len(res.Results), 3, "one result per step")
}

func TestPipeline_FailFast(t *testing.T) {
	dir := t.TempDir()
	boom := errors.WithKind(errors.ErrCommandFailed, "✗ Failed: two step after 0.01s")
	runner := &fakeRunner{failAt: "two", failErr: boom}

	steps := chain(dir, "one", "two", "three", "four")
	p := NewPipeline(PipelineOptions{Steps: steps, Runner: runner, Logger: logx.Discard()})

	res, err := p.Run(context.Background())
	testutil.AssertError(t, err, "pipeline should fail")
	testutil.AssertLines(t, runner.executed, []string{"one", "two"}, "nothing runs after the failure")
	testutil.AssertEqual(t, res.Completed, 1, "one step completed")

	var stepErr *StepError
	testutil.AssertTrue(t, errors.As(err, &stepErr), "is a *StepError")
	testutil.AssertEqual(t, stepErr.Index, 2, "failing index")
	testutil.AssertEqual(t, stepErr.Total, 4, "total")
	testutil.AssertEqual(t, stepErr.Step.Name, "two", "failing step")
	testutil.AssertEqual(t, err.Error(), boom.Error(), "message passes through")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrCommandFailed), "kind preserved")

	testutil.AssertFileExists(t, filepath.Join(dir, "one.txt"))
	testutil.AssertFileMissing(t, filepath.Join(dir, "three.txt"))
	testutil.AssertFileMissing(t, filepath.Join(dir, "four.txt"))
}

func TestPipeline_FailFastWithShell(t *testing.T) {
	dir := t.TempDir()
	steps := chain(dir, "one", "two", "three")
	steps[1].Command = "echo broken >&2; exit 4"

	runner := shell.NewRunner(logx.Discard(), nil, shell.Options{})
	p := NewPipeline(PipelineOptions{Steps: steps, Runner: runner, Logger: logx.Discard()})

	_, err := p.Run(context.Background())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrCommandFailed), "non-zero exit is a command failure")
	testutil.AssertContains(t, err.Error(), "✗ Failed: two step after", "failure line")
	testutil.AssertContains(t, err.Error(), "broken", "stderr included")

	var cmdErr *shell.CommandError
	testutil.AssertTrue(t, errors.As(err, &cmdErr), "command error reachable")
	testutil.AssertEqual(t, cmdErr.ExitCode, 4, "exit code")

	testutil.AssertFileExists(t, filepath.Join(dir, "one.txt"))
	testutil.AssertFileMissing(t, filepath.Join(dir, "three.txt"))
}

func TestPipeline_MissingInput(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}

	steps := chain(dir, "one", "two")
	steps[0].Outputs = nil // no produce nada

	p := NewPipeline(PipelineOptions{Steps: steps, Runner: runner, Logger: logx.Discard()})
	_, err := p.Run(context.Background())

	testutil.AssertTrue(t, errors.Is(err, errors.ErrMissingInput), "missing input")
	testutil.AssertLines(t, runner.executed, []string{"one"}, "second step never runs")
	testutil.AssertContains(t, err.Error(), "✗ Missing input for: two step", "names the step")
	testutil.AssertContains(t, err.Error(), "one.txt", "names the file")
	testutil.AssertEqual(t, errors.ExitCode(err), errors.ExitFailed, "exit 1")
}

func TestPipeline_EmptyInputWarns(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	testutil.WriteFile(t, empty, "")

	presenter := &recordingPresenter{}
	runner := &fakeRunner{}
	p := NewPipeline(PipelineOptions{
		Steps: []domain.Step{{
			Name: "probe", Description: "probe step", Command: "true",
			Inputs: []string{empty},
		}},
		Runner:    runner,
		Logger:    logx.Discard(),
		Presenter: presenter,
	})

	_, err := p.Run(context.Background())
	testutil.AssertNoError(t, err, "empty input is allowed")
	testutil.AssertLines(t, runner.executed, []string{"probe"}, "step still runs")
	testutil.AssertLen(t, presenter.warnings, 1, "one warning")
	testutil.AssertContains(t, presenter.warnings[0], "empty.txt is empty", "warning names the file")
}

func TestPipeline_Cancelled(t *testing.T) {
	runner := &fakeRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(PipelineOptions{Steps: chain(t.TempDir(), "one"), Runner: runner, Logger: logx.Discard()})
	_, err := p.Run(ctx)

	testutil.AssertTrue(t, errors.IsAborted(err), "aborted")
	testutil.AssertLen(t, runner.executed, 0, "nothing executed")
	testutil.AssertContains(t, err.Error(), "✗ Aborted before: one step", "message")
}

func TestPipeline_Empty(t *testing.T) {
	p := NewPipeline(PipelineOptions{Runner: &fakeRunner{}, Logger: logx.Discard()})
	res, err := p.Run(context.Background())
	testutil.AssertNoError(t, err, "empty pipeline")
	testutil.AssertEqual(t, res.Completed, 0, "nothing completed")
}
