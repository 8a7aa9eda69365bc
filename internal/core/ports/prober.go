// internal/core/ports/prober.go
package ports

import "context"

// WildcardResult resume una sonda de DNS comodín.
type WildcardResult struct {
	// Wildcard es true si un label aleatorio resolvió
	Wildcard bool

	// Probe es el nombre consultado
	Probe string

	// Answers son los registros devueltos
	Answers []string
}

// WildcardProber detecta DNS comodín bajo un dominio.
type WildcardProber interface {
	Probe(ctx context.Context, domain string) (WildcardResult, error)
}
