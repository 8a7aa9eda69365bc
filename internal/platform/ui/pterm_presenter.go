// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"shabnam/internal/core/domain"
)

// PTermPresenter implementa Presenter con los estilos de pterm.
type PTermPresenter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPTermPresenter crea un presenter que escribe en stdout
func NewPTermPresenter() *PTermPresenter {
	return NewPTermPresenterWithWriter(os.Stdout)
}

// NewPTermPresenterWithWriter crea un presenter que escribe en w
func NewPTermPresenterWithWriter(w io.Writer) *PTermPresenter {
	return &PTermPresenter{out: w}
}

func (p *PTermPresenter) println(style *pterm.Style, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if style == nil {
		fmt.Fprintln(p.out, text)
		return
	}
	fmt.Fprintln(p.out, style.Sprint(text))
}

// Start muestra el encabezado y el enfoque elegido
func (p *PTermPresenter) Start(info RunInfo) {
	p.println(StyleBanner, bannerLine(info))
	p.println(StyleWarning, approachLine(info))
}

// StepStarted muestra la línea azul con timestamp
func (p *PTermPresenter) StepStarted(step domain.Step, at time.Time) {
	p.println(StyleStart, startedLine(step.Description, at))
}

// StepCompleted muestra la línea verde y el preview del stdout
func (p *PTermPresenter) StepCompleted(step domain.Step, result *domain.StepResult, preview string) {
	p.println(StyleSuccess, completedLine(step.Description, result.Duration))
	if line := previewLine(preview); line != "" {
		p.println(nil, line)
	}
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.println(nil, msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.println(StyleWarning, IconWarning+" "+msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.println(StyleError, errorLine(msg))
}

// Table renderiza una tabla con bordes
func (p *PTermPresenter) Table(title string, header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)

	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		p.Error(err.Error())
		return
	}

	if title != "" {
		p.println(StyleBanner, title)
	}
	p.println(nil, rendered)
}

// Finish muestra el panel de resultados y la línea de cierre
func (p *PTermPresenter) Finish(stats RunStats) {
	box := pterm.DefaultBox.
		WithTitle("Results").
		WithTitleTopLeft().
		WithBoxStyle(StyleSecondary).
		Sprint(strings.Join(summaryLines(stats), "\n"))

	p.println(nil, box)
	p.println(StyleBanner, finishLine(stats))
}

// Close no tiene recursos que liberar
func (p *PTermPresenter) Close() error {
	return nil
}
