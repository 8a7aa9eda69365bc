// internal/core/domain/credentials.go
package domain

import "shabnam/internal/platform/errors"

// Credentials son las claves que exige el enfoque lento.
type Credentials struct {
	GitHubToken string
	ShodanKey   string
}

// Validate verifica que ambas claves estén presentes.
func (c Credentials) Validate() error {
	if c.GitHubToken == "" {
		return errors.WithKind(errors.ErrMissingCredential, "GitHub API key is required for slow approach.")
	}
	if c.ShodanKey == "" {
		return errors.WithKind(errors.ErrMissingCredential, "Shodan API key is required for slow approach.")
	}
	return nil
}

// Secrets devuelve los valores que deben ocultarse en logs.
func (c Credentials) Secrets() []string {
	var out []string
	for _, s := range []string{c.GitHubToken, c.ShodanKey} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
