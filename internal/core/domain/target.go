// internal/core/domain/target.go
package domain

import (
	"fmt"

	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/validator"
)

// Target representa el objetivo del reconocimiento.
type Target struct {
	// Domain es el dominio apex, ya normalizado tras Validate
	Domain string

	// Approach es el pipeline elegido (fast o slow)
	Approach Approach
}

// NewTarget crea un target sin validar.
func NewTarget(domain string, approach Approach) *Target {
	return &Target{
		Domain:   domain,
		Approach: approach,
	}
}

// Validate normaliza Domain y verifica dominio y enfoque.
func (t *Target) Validate() error {
	normalized, err := validator.ValidateApexDomain(t.Domain)
	if err != nil {
		return err
	}
	t.Domain = normalized

	if !t.Approach.IsValid() {
		return errors.Wrapf(errors.ErrApproachRequired, "approach %q", string(t.Approach))
	}
	return nil
}

// String retorna una representación legible del target.
func (t *Target) String() string {
	return fmt.Sprintf("Target{domain=%s, approach=%s}", t.Domain, t.Approach)
}
