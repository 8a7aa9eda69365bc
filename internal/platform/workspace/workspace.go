// Package workspace provisions the per-domain output tree.
package workspace

import (
	"os"
	"os/user"

	"shabnam/internal/core/domain"
	"shabnam/internal/platform/errors"
)

// DirPerm is applied to every directory Provision creates.
const DirPerm = 0o755

// fallbackBase is used when the invoking user cannot be resolved.
const fallbackBase = "/root"

// currentUser is swapped in tests.
var currentUser = user.Current

// DefaultBase returns the fixed base directory: the invoking user's home
// as recorded in the user database. $HOME is not consulted, so the
// environment cannot move the tree.
func DefaultBase() string {
	u, err := currentUser()
	if err != nil || u.HomeDir == "" {
		return fallbackBase
	}
	return u.HomeDir
}

// Provision creates <base>/recon_framework/<domain>/ and its three children.
// Existing directories are reused.
func Provision(base, domainName string) (domain.Layout, error) {
	if base == "" || domainName == "" {
		return domain.Layout{}, errors.Wrap(errors.ErrWorkspace, "base and domain are required")
	}

	layout := domain.NewLayout(base, domainName)
	for _, dir := range layout.Dirs() {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return domain.Layout{}, errors.Wrapf(errors.ErrWorkspace, "create %s: %v", dir, err)
		}
	}
	return layout, nil
}
