// Package toolcheck verifica que las herramientas externas de cada enfoque
// estén disponibles en PATH, sin instalarlas ni ejecutar el pipeline.
package toolcheck

import "time"

// Status representa el resultado de comprobar una herramienta.
type Status string

const (
	StatusInstalled   Status = "installed"
	StatusMissing     Status = "missing"
	StatusCheckFailed Status = "check_failed"
)

// Tool describe una dependencia externa del pipeline.
type Tool struct {
	Name        string
	Binary      string
	Purpose     string
	VersionArgs []string // nil = la herramienta no expone versión
}

// Result es el estado de una herramienta tras la comprobación.
type Result struct {
	Tool     Tool
	Status   Status
	Path     string
	Version  string
	Err      error
	Duration time.Duration
}

// OK reporta si la herramienta se encontró.
func (r Result) OK() bool {
	return r.Status == StatusInstalled
}
