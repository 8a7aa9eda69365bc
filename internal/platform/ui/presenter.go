// internal/platform/ui/presenter.go
package ui

import (
	"time"

	"shabnam/internal/core/ports"
)

// Presenter define la interfaz para mostrar el progreso de una ejecución
// del pipeline por consola. Recibe los eventos de paso del runner.
type Presenter interface {
	ports.StepReporter

	// Start muestra el encabezado de la ejecución
	Start(info RunInfo)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Table muestra una tabla con encabezado (doctor)
	Table(title string, header []string, rows [][]string)

	// Finish muestra el resumen y la línea de cierre
	Finish(stats RunStats)

	// Close libera recursos del presenter
	Close() error
}

// RunInfo contiene información inicial de la ejecución
type RunInfo struct {
	Domain     string
	Approach   string // "fast" o "slow"
	Root       string
	MergeMode  string
	TotalSteps int
}

// RunStats contiene el resumen final
type RunStats struct {
	Domain   string
	Root     string
	Duration time.Duration
	Steps    int
	Results  []ResultCount
}

// ResultCount es el número de hosts en un archivo de resultados
type ResultCount struct {
	File  string
	Lines int
}
