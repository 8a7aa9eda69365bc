// internal/core/domain/step.go
package domain

import (
	"context"
	"strings"
	"time"

	"shabnam/internal/platform/errors"
)

// RedactMask reemplaza secretos en líneas de comando mostradas.
const RedactMask = "****"

// Func es un paso implementado en Go; el string devuelto alimenta el preview.
type Func func(ctx context.Context) (string, error)

// Step es una operación del pipeline con entradas y salidas declaradas.
// Exactamente uno de Command o Func debe estar definido.
type Step struct {
	// Name identificador corto (ej: "findomain", "merge-alive")
	Name string

	// Description texto mostrado al usuario
	Description string

	// Dir directorio de trabajo
	Dir string

	// Command línea de shell a ejecutar
	Command string

	// Func implementación nativa
	Func Func

	// Inputs archivos que deben existir antes de ejecutar
	Inputs []string

	// Outputs archivos que el paso produce
	Outputs []string

	// Redact secretos a ocultar al mostrar Command
	Redact []string
}

// IsNative reporta si el paso no lanza un proceso externo.
func (s Step) IsNative() bool {
	return s.Func != nil
}

// Validate verifica la forma del paso.
func (s Step) Validate() error {
	if s.Name == "" || s.Description == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "step needs a name and a description")
	}
	if (s.Command == "") == (s.Func == nil) {
		return errors.Wrapf(errors.ErrInvalidConfig, "step %s must define exactly one of command or func", s.Name)
	}
	return nil
}

// Display devuelve el comando con los secretos ocultos.
func (s Step) Display() string {
	if s.IsNative() {
		return "(native) " + s.Name
	}
	return Redact(s.Command, s.Redact)
}

// Redact reemplaza cada secreto no vacío de text por RedactMask.
func Redact(text string, secrets []string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		text = strings.ReplaceAll(text, secret, RedactMask)
	}
	return text
}

// StepResult es la salida capturada de un paso exitoso.
type StepResult struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	StartedAt time.Time
	Duration  time.Duration
}

// Preview recorta el stdout a n runas, sin espacios alrededor.
func (r *StepResult) Preview(n int) string {
	if r == nil {
		return ""
	}
	out := strings.TrimSpace(r.Stdout)
	if runes := []rune(out); n > 0 && len(runes) > n {
		out = string(runes[:n])
	}
	return out
}
