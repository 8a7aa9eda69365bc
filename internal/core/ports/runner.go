// internal/core/ports/runner.go
package ports

import (
	"context"
	"time"

	"shabnam/internal/core/domain"
)

// StepRunner ejecuta un paso del pipeline de forma bloqueante.
// Un error no nil significa que el pipeline debe abortar.
type StepRunner interface {
	Execute(ctx context.Context, step domain.Step) (*domain.StepResult, error)
}

// StepReporter recibe los eventos de ciclo de vida de cada paso.
// Desacopla la salida por consola de la ejecución.
type StepReporter interface {
	// StepStarted se llama justo antes de lanzar el paso
	StepStarted(step domain.Step, at time.Time)

	// StepCompleted se llama solo si el paso terminó con éxito
	StepCompleted(step domain.Step, result *domain.StepResult, preview string)
}
