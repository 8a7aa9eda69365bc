// internal/core/domain/enums.go
package domain

import (
	"strings"

	"shabnam/internal/platform/errors"
)

// Approach define qué pipeline se ejecuta.
type Approach string

const (
	// ApproachFast enumeración pasiva + clasificación HTTP
	ApproachFast Approach = "fast"

	// ApproachSlow agrega APIs con credenciales y fuerza bruta
	ApproachSlow Approach = "slow"
)

// IsValid verifica si el enfoque es válido.
func (a Approach) IsValid() bool {
	return a == ApproachFast || a == ApproachSlow
}

func (a Approach) String() string {
	return string(a)
}

// Title devuelve "Fast" o "Slow" para mensajes.
func (a Approach) Title() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// ParseApproach acepta "fast"/"slow" sin importar mayúsculas.
func ParseApproach(s string) (Approach, error) {
	a := Approach(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", errors.Wrapf(errors.ErrApproachRequired, "unknown approach %q", s)
	}
	return a, nil
}

// Bucket clasifica hosts por código de respuesta HTTP.
type Bucket string

const (
	BucketAlive       Bucket = "alive"
	BucketRedirecting Bucket = "redirecting"
	BucketForbidden   Bucket = "forbidden"
)

// FastBuckets es el orden de los pases de probing del enfoque rápido.
var FastBuckets = []Bucket{BucketAlive, BucketRedirecting, BucketForbidden}

// ResultName es el archivo acumulativo en results/.
func (b Bucket) ResultName() string {
	return string(b) + "_subs.txt"
}

// URLListName es la salida cruda del probe, con esquema.
func (b Bucket) URLListName() string {
	return string(b) + "_subs_url.txt"
}

// MatchCodes son los códigos que httpx debe aceptar para el bucket.
func (b Bucket) MatchCodes() string {
	switch b {
	case BucketAlive:
		return "200"
	case BucketRedirecting:
		return "301,302"
	case BucketForbidden:
		return "403"
	default:
		return ""
	}
}

// Label es el texto usado en las descripciones de pasos.
func (b Bucket) Label() string {
	switch b {
	case BucketAlive:
		return "alive"
	case BucketRedirecting:
		return "redirect"
	case BucketForbidden:
		return "forbidden"
	default:
		return string(b)
	}
}

// MergeMode define cómo se ejecutan los pasos de merge.
type MergeMode string

const (
	// MergeExternal usa anew/sed/jq/sort vía shell
	MergeExternal MergeMode = "external"

	// MergeNative implementa la misma semántica en Go
	MergeNative MergeMode = "native"
)

// IsValid verifica si el modo es conocido.
func (m MergeMode) IsValid() bool {
	return m == MergeExternal || m == MergeNative
}

func (m MergeMode) String() string {
	return string(m)
}
