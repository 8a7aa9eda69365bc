// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shabnam/internal/core/domain"
	"shabnam/internal/core/ports"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
	"shabnam/internal/platform/ui"
)

// StepError identifica el paso que abortó el pipeline.
// Error() devuelve el mensaje del error subyacente sin decorar.
type StepError struct {
	Index int // base 1
	Total int
	Step  domain.Step
	Err   error
}

func (e *StepError) Error() string { return e.Err.Error() }

func (e *StepError) Unwrap() error { return e.Err }

// PipelineOptions configura un Pipeline.
type PipelineOptions struct {
	Name      string
	Steps     []domain.Step
	Runner    ports.StepRunner
	Logger    logx.Logger
	Presenter ui.Presenter
}

// Pipeline ejecuta una lista fija de pasos, uno tras otro, y se detiene
// en el primer error. Nunca reintenta ni salta pasos.
type Pipeline struct {
	name      string
	steps     []domain.Step
	runner    ports.StepRunner
	logger    logx.Logger
	presenter ui.Presenter
}

// PipelineResult resume una ejecución.
type PipelineResult struct {
	Completed int
	Total     int
	Duration  time.Duration
	Results   []*domain.StepResult
}

// NewPipeline crea un Pipeline.
func NewPipeline(opts PipelineOptions) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	return &Pipeline{
		name:      opts.Name,
		steps:     opts.Steps,
		runner:    opts.Runner,
		logger:    opts.Logger.With("component", "pipeline", "pipeline", opts.Name),
		presenter: opts.Presenter,
	}
}

// Run recorre los pasos una sola vez. En el primer fallo devuelve un
// *StepError y no ejecuta nada más.
func (p *Pipeline) Run(ctx context.Context) (PipelineResult, error) {
	start := time.Now()
	res := PipelineResult{Total: len(p.steps)}

	p.logger.Info("pipeline started", "steps", len(p.steps))

	for i, step := range p.steps {
		if err := p.runStep(ctx, i, step, &res); err != nil {
			res.Duration = time.Since(start)
			p.logger.Err(err,
				"step", step.Name,
				"index", i+1,
				"total", len(p.steps),
			)
			return res, err
		}
	}

	res.Duration = time.Since(start)
	p.logger.Info("pipeline completed",
		"steps", res.Completed,
		"duration", res.Duration.String(),
	)
	return res, nil
}

func (p *Pipeline) runStep(ctx context.Context, i int, step domain.Step, res *PipelineResult) error {
	fail := func(err error) error {
		return &StepError{Index: i + 1, Total: len(p.steps), Step: step, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(errors.WithKind(errors.ErrAborted,
			fmt.Sprintf("✗ Aborted before: %s\n  Error: %v", step.Description, err)))
	}

	if err := p.checkInputs(step); err != nil {
		return fail(err)
	}

	p.logger.Debug("running step",
		"step", step.Name,
		"index", i+1,
		"native", step.IsNative(),
		"command", step.Display(),
	)

	out, err := p.runner.Execute(ctx, step)
	if err != nil {
		return fail(err)
	}

	res.Completed++
	res.Results = append(res.Results, out)
	return nil
}

// checkInputs exige que cada entrada declarada exista. Una entrada vacía
// solo genera una advertencia: un paso sin resultados es legítimo.
func (p *Pipeline) checkInputs(step domain.Step) error {
	for _, path := range step.Inputs {
		info, err := os.Stat(path)
		if err != nil {
			return errors.WithKind(errors.ErrMissingInput,
				fmt.Sprintf("✗ Missing input for: %s\n  Error: %s was not produced by an earlier step", step.Description, path))
		}
		if info.Size() == 0 {
			p.logger.Warn("step input is empty", "step", step.Name, "input", path)
			p.presenter.Warning(fmt.Sprintf("%s is empty, %s will see no input", filepath.Base(path), step.Description))
		}
	}
	return nil
}
