// cmd/shabnam/app.go
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
	"shabnam/internal/platform/ui"
)

// app agrupa la E/S del proceso y lo que el manejador final necesita
// para reportar un error.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	lookupEnv func(string) (string, bool)

	// base vacío = workspace.DefaultBase(); solo los tests lo fijan
	base string

	// started se marca al entrar en RunE; antes de eso, todo error es de uso
	started   bool
	presenter ui.Presenter
	logger    logx.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:        in,
		out:       out,
		errOut:    errOut,
		lookupEnv: os.LookupEnv,
	}
}

// execute corre la línea de comandos y devuelve el código de salida.
func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.Execute()
	if err == nil {
		return errors.ExitOK
	}

	if !a.started {
		err = errors.WithKind(errors.ErrUsage, err.Error())
	}
	a.report(err)
	return errors.ExitCode(err)
}

// report es el único punto donde un error llega a la consola.
func (a *app) report(err error) {
	p := a.presenter
	if p == nil {
		p = newPresenter(a.out, false)
	}
	p.Error(err.Error())

	if errors.Is(err, errors.ErrUsage) {
		fmt.Fprintln(a.errOut, "Run 'shabnam --help' for usage.")
		return
	}
	if a.logger != nil {
		a.logger.Err(err, "exit_code", errors.ExitCode(err))
	}
}

// newPresenter usa pterm solo sobre una terminal con color.
func newPresenter(w io.Writer, noColor bool) ui.Presenter {
	if noColor || !isTerminal(w) {
		ui.DisableColor()
		return ui.NewRawPresenterWithWriter(w)
	}
	return ui.NewPTermPresenterWithWriter(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
