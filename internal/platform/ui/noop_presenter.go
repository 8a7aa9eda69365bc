// internal/platform/ui/noop_presenter.go
package ui

import (
	"time"

	"shabnam/internal/core/domain"
)

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para tests o modo quiet.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)                                             {}
func (n *NoopPresenter) StepStarted(step domain.Step, at time.Time)                     {}
func (n *NoopPresenter) StepCompleted(step domain.Step, r *domain.StepResult, p string) {}
func (n *NoopPresenter) Info(msg string)                                                {}
func (n *NoopPresenter) Warning(msg string)                                             {}
func (n *NoopPresenter) Error(msg string)                                               {}
func (n *NoopPresenter) Table(title string, header []string, rows [][]string)           {}
func (n *NoopPresenter) Finish(stats RunStats)                                          {}
func (n *NoopPresenter) Close() error                                                   { return nil }

var (
	_ Presenter = (*NoopPresenter)(nil)
	_ Presenter = (*PTermPresenter)(nil)
	_ Presenter = (*RawPresenter)(nil)
)
