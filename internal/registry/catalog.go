package registry

import (
	_ "embed"

	apperrors "github.com/chisom-ui/chisom/pkg/errors"
)

//go:embed catalog.json
var builtinCatalog []byte

// loadBuiltin populates the registry from the embedded catalog.
func (r *Registry) loadBuiltin() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := decode(builtinCatalog)
	if err != nil {
		return apperrors.NewParseError("catalog.json (embedded)", err)
	}

	r.version = file.Version
	r.components = file.Components
	return nil
}
