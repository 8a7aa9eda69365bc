// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"os"
	"sync"
	"time"

	"shabnam/internal/core/domain"
	"shabnam/internal/core/ports"
	"shabnam/internal/platform/ui"
)

// fakeRunner registra los pasos ejecutados y crea sus outputs.
type fakeRunner struct {
	mu       sync.Mutex
	executed []string
	failAt   string
	failErr  error
}

func (f *fakeRunner) Execute(ctx context.Context, step domain.Step) (*domain.StepResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.executed = append(f.executed, step.Name)
	if step.Name == f.failAt {
		return nil, f.failErr
	}
	for _, out := range step.Outputs {
		if err := os.WriteFile(out, []byte(step.Name+"\n"), 0o644); err != nil {
			return nil, err
		}
	}
	return &domain.StepResult{Stdout: step.Name, Duration: time.Millisecond}, nil
}

// recordingPresenter guarda los mensajes que recibe.
type recordingPresenter struct {
	ui.NoopPresenter

	mu       sync.Mutex
	started  []string
	done     []string
	warnings []string
	info     *ui.RunInfo
	stats    *ui.RunStats
}

func (r *recordingPresenter) Start(info ui.RunInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = &info
}

func (r *recordingPresenter) StepStarted(step domain.Step, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, step.Description)
}

func (r *recordingPresenter) StepCompleted(step domain.Step, res *domain.StepResult, preview string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = append(r.done, step.Description)
}

func (r *recordingPresenter) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

func (r *recordingPresenter) Finish(stats ui.RunStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = &stats
}

// staticCredentials devuelve siempre las mismas claves.
type staticCredentials struct {
	creds domain.Credentials
	err   error
	calls int
}

func (s *staticCredentials) Collect(ctx context.Context) (domain.Credentials, error) {
	s.calls++
	return s.creds, s.err
}

// stubProber devuelve un resultado fijo.
type stubProber struct {
	result ports.WildcardResult
	err    error
	calls  int
}

func (s *stubProber) Probe(ctx context.Context, d string) (ports.WildcardResult, error) {
	s.calls++
	return s.result, s.err
}

var (
	_ ports.StepRunner       = (*fakeRunner)(nil)
	_ ports.CredentialSource = (*staticCredentials)(nil)
	_ ports.WildcardProber   = (*stubProber)(nil)
	_ ui.Presenter           = (*recordingPresenter)(nil)
)
