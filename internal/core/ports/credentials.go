// internal/core/ports/credentials.go
package ports

import (
	"context"

	"shabnam/internal/core/domain"
)

// CredentialSource obtiene las claves del enfoque lento.
type CredentialSource interface {
	Collect(ctx context.Context) (domain.Credentials, error)
}
