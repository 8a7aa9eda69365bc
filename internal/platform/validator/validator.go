// internal/platform/validator/validator.go
package validator

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"shabnam/internal/platform/errors"
)

// apexPattern exige al menos dos labels de 1-63 chars, guiones solo internos.
var apexPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)+$`)

// commonSubdomains son labels que casi nunca encabezan un dominio apex.
var commonSubdomains = map[string]struct{}{
	"www":     {},
	"mail":    {},
	"ftp":     {},
	"api":     {},
	"dev":     {},
	"test":    {},
	"staging": {},
	"blog":    {},
	"shop":    {},
	"admin":   {},
}

// DomainError describe por qué un dominio fue rechazado.
type DomainError struct {
	Input  string
	Reason string
	Kind   error
}

func (e *DomainError) Error() string { return e.Reason }

func (e *DomainError) Unwrap() error { return e.Kind }

// NormalizeDomain lleva un dominio a minúsculas y sin espacios alrededor.
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// IsApexFormat verifica el patrón label.label sobre un dominio ya normalizado.
func IsApexFormat(domain string) bool {
	return apexPattern.MatchString(domain)
}

// IsCommonSubdomainLabel reporta si label está en la denylist.
func IsCommonSubdomainLabel(label string) bool {
	_, ok := commonSubdomains[label]
	return ok
}

// ValidateApexDomain normaliza raw y lo valida como dominio apex.
// Devuelve el dominio normalizado o un *DomainError que envuelve
// ErrInvalidDomain o ErrSubdomainInput.
func ValidateApexDomain(raw string) (string, error) {
	domain := NormalizeDomain(raw)

	if !IsApexFormat(domain) {
		return "", &DomainError{
			Input:  raw,
			Reason: "Invalid domain format. Please provide a valid apex domain (e.g., example.com).",
			Kind:   errors.ErrInvalidDomain,
		}
	}

	first, _, _ := strings.Cut(domain, ".")
	if IsCommonSubdomainLabel(first) {
		return "", &DomainError{
			Input:  raw,
			Reason: "Domain appears to be a subdomain (starts with '" + first + "'). Please provide the apex domain only.",
			Kind:   errors.ErrSubdomainInput,
		}
	}

	return domain, nil
}

// RegistrableDomain devuelve el eTLD+1 de domain según la public suffix list.
func RegistrableDomain(domain string) (string, error) {
	return publicsuffix.EffectiveTLDPlusOne(NormalizeDomain(domain))
}

// IsRegistrable reporta si domain coincide con su propio eTLD+1.
// Un false no invalida el dominio; solo indica que puede ser un subdominio.
func IsRegistrable(domain string) bool {
	reg, err := RegistrableDomain(domain)
	if err != nil {
		return false
	}
	return reg == NormalizeDomain(domain)
}
