// Package credential reads the identity token that binds an encrypted save
// to its owner.
package credential

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savecrypt/pkg/errors"
	"github.com/arthur-debert/savecrypt/pkg/logging"
)

// Resolver reads the identity from a single fixed file
type Resolver struct {
	path string
}

// NewResolver creates a Resolver for the credential file at path
func NewResolver(path string) *Resolver {
	return &Resolver{path: path}
}

// ResolveIdentity returns the trimmed identity token. It checks once and
// reads once; there is no retry.
func (r *Resolver) ResolveIdentity() (string, error) {
	logger := logging.GetLogger("credential")
	name := filepath.Base(r.path)

	if _, err := os.Stat(r.path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrCredentialMissing, "%s not found in script directory", name).
				WithDetail("path", r.path)
		}
		return "", errors.Wrapf(err, errors.ErrCredentialRead, "Failed to read %s: %v", name, err).
			WithDetail("path", r.path)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrCredentialRead, "Failed to read %s: %v", name, err).
			WithDetail("path", r.path)
	}

	identity := strings.TrimSpace(string(data))
	if identity == "" {
		return "", errors.Newf(errors.ErrCredentialEmpty, "%s is empty", name).
			WithDetail("path", r.path)
	}

	logger.Debug().Str("path", r.path).Int("length", len(identity)).Msg("Identity resolved")
	return identity, nil
}
