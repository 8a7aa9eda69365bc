// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"shabnam/internal/core/domain"
)

// RawPresenter escribe las mismas líneas que PTermPresenter pero sin
// estilos; se usa con --no-color o cuando stdout no es una terminal.
type RawPresenter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRawPresenter crea un RawPresenter sobre stdout
func NewRawPresenter() *RawPresenter {
	return NewRawPresenterWithWriter(os.Stdout)
}

// NewRawPresenterWithWriter crea un RawPresenter sobre w
func NewRawPresenterWithWriter(w io.Writer) *RawPresenter {
	return &RawPresenter{out: w}
}

func (r *RawPresenter) println(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, text)
}

func (r *RawPresenter) Start(info RunInfo) {
	r.println(bannerLine(info))
	r.println(approachLine(info))
}

func (r *RawPresenter) StepStarted(step domain.Step, at time.Time) {
	r.println(startedLine(step.Description, at))
}

func (r *RawPresenter) StepCompleted(step domain.Step, result *domain.StepResult, preview string) {
	r.println(completedLine(step.Description, result.Duration))
	if line := previewLine(preview); line != "" {
		r.println(line)
	}
}

func (r *RawPresenter) Info(msg string)    { r.println(msg) }
func (r *RawPresenter) Warning(msg string) { r.println(IconWarning + " " + msg) }
func (r *RawPresenter) Error(msg string)   { r.println(errorLine(msg)) }

// Table usa la tabla de pterm sin bordes; sin estilos no emite ANSI
func (r *RawPresenter) Table(title string, header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		r.Error(err.Error())
		return
	}
	if title != "" {
		r.println(title)
	}
	r.println(pterm.RemoveColorFromString(rendered))
}

func (r *RawPresenter) Finish(stats RunStats) {
	for _, line := range summaryLines(stats) {
		r.println("  " + line)
	}
	r.println(finishLine(stats))
}

func (r *RawPresenter) Close() error {
	return nil
}
