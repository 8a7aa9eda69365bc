// internal/core/usecases/recon.go
package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"shabnam/internal/adapters/output"
	"shabnam/internal/core/domain"
	"shabnam/internal/core/ports"
	"shabnam/internal/platform/logx"
	"shabnam/internal/platform/ui"
	"shabnam/internal/platform/workspace"
)

// ReconOptions configura el servicio de reconocimiento.
type ReconOptions struct {
	// Base directorio bajo el que se crea recon_framework/
	Base string

	Settings    Settings
	Runner      ports.StepRunner
	Credentials ports.CredentialSource

	// Prober sonda de DNS comodín antes de la fuerza bruta (nil = desactivada)
	Prober ports.WildcardProber

	Presenter ui.Presenter
	Logger    logx.Logger
}

// Recon ejecuta un enfoque completo contra un target: provisiona el árbol,
// obtiene credenciales si hacen falta y corre el pipeline.
type Recon struct {
	base        string
	settings    Settings
	runner      ports.StepRunner
	credentials ports.CredentialSource
	prober      ports.WildcardProber
	presenter   ui.Presenter
	logger      logx.Logger
}

// Report es el resultado de una ejecución, completa o no.
type Report struct {
	Target    domain.Target
	Layout    domain.Layout
	Pipeline  PipelineResult
	Wildcard  *ports.WildcardResult
	Results   []ui.ResultCount
	StartedAt time.Time
	Duration  time.Duration
}

// NewRecon crea el servicio.
func NewRecon(opts ReconOptions) *Recon {
	if opts.Base == "" {
		opts.Base = workspace.DefaultBase()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	return &Recon{
		base:        opts.Base,
		settings:    opts.Settings,
		runner:      opts.Runner,
		credentials: opts.Credentials,
		prober:      opts.Prober,
		presenter:   opts.Presenter,
		logger:      opts.Logger.With("component", "recon"),
	}
}

// Run valida el target, provisiona directorios y ejecuta el pipeline.
// Un target inválido nunca crea directorios.
func (r *Recon) Run(ctx context.Context, target domain.Target) (*Report, error) {
	report := &Report{Target: target, StartedAt: time.Now()}

	if err := target.Validate(); err != nil {
		return report, err
	}
	report.Target = target

	layout, err := workspace.Provision(r.base, target.Domain)
	if err != nil {
		return report, err
	}
	report.Layout = layout

	logger := r.logger.With("domain", target.Domain, "approach", target.Approach.String())
	logger.Info("workspace ready", "root", layout.Root)

	r.presenter.Start(ui.RunInfo{
		Domain:     target.Domain,
		Approach:   target.Approach.String(),
		Root:       layout.Root,
		MergeMode:  r.settings.MergeMode.String(),
		TotalSteps: len(BuildSteps(target, layout, domain.Credentials{}, r.settings)),
	})

	var creds domain.Credentials
	if target.Approach == domain.ApproachSlow {
		creds, err = r.collectCredentials(ctx)
		if err != nil {
			return report, err
		}
		report.Wildcard = r.probeWildcard(ctx, target.Domain, logger)
	}

	pipeline := NewPipeline(PipelineOptions{
		Name:      target.Approach.String(),
		Steps:     BuildSteps(target, layout, creds, r.settings),
		Runner:    r.runner,
		Logger:    logger,
		Presenter: r.presenter,
	})

	report.Pipeline, err = pipeline.Run(ctx)
	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		return report, err
	}

	report.Results = r.countResults(layout, logger)
	r.presenter.Finish(ui.RunStats{
		Domain:   target.Domain,
		Root:     layout.Root,
		Duration: report.Duration,
		Steps:    report.Pipeline.Completed,
		Results:  report.Results,
	})
	return report, nil
}

func (r *Recon) collectCredentials(ctx context.Context) (domain.Credentials, error) {
	if r.credentials == nil {
		var none domain.Credentials
		return none, none.Validate()
	}
	creds, err := r.credentials.Collect(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	return creds, creds.Validate()
}

// probeWildcard nunca falla la ejecución; solo advierte.
func (r *Recon) probeWildcard(ctx context.Context, d string, logger logx.Logger) *ports.WildcardResult {
	if r.prober == nil {
		return nil
	}

	res, err := r.prober.Probe(ctx, d)
	if err != nil {
		logger.Warn("wildcard probe failed", "error", err.Error())
		r.presenter.Warning(fmt.Sprintf("Wildcard DNS check failed: %v", err))
		return nil
	}

	if res.Wildcard {
		logger.Warn("wildcard DNS detected", "probe", res.Probe, "answers", strings.Join(res.Answers, ","))
		r.presenter.Warning(fmt.Sprintf("Wildcard DNS detected: %s resolves to %s, ffuf results may be noise",
			res.Probe, strings.Join(res.Answers, ", ")))
	} else {
		logger.Debug("no wildcard DNS")
	}
	return &res
}

func (r *Recon) countResults(layout domain.Layout, logger logx.Logger) []ui.ResultCount {
	counts := make([]ui.ResultCount, 0, len(domain.FastBuckets))
	for _, path := range layout.ResultFiles() {
		n, err := output.CountLines(path)
		if err != nil {
			logger.Warn("cannot count result file", "file", path, "error", err.Error())
			continue
		}
		counts = append(counts, ui.ResultCount{File: filepath.Base(path), Lines: n})
	}
	return counts
}
