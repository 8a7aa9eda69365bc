// cmd/shabnam/signals.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// rootContextWithSignals deriva de parent un contexto que se cancela con
// SIGINT o SIGTERM. Tras la primera señal se restaura el manejo por
// defecto, así una segunda mata el proceso. El cancel devuelto libera
// la señal y la goroutine.
func rootContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			signal.Stop(ch)
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}
	return base, cleanup
}
