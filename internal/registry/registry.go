package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	apperrors "github.com/chisom-ui/chisom/pkg/errors"
)

// Registry manages the component catalog. It is backed by a JSON file when
// one exists and falls back to the embedded built-in catalog otherwise.
type Registry struct {
	path       string
	mu         sync.RWMutex
	version    string
	components []Component
}

// NewRegistry creates a Registry instance and loads the catalog. A missing
// registry file is not an error: the built-in catalog is used so the browser
// always has content.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		version: "1.0",
	}

	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := r.loadBuiltin(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Load reads the catalog from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	file, err := decode(data)
	if err != nil {
		return apperrors.NewParseError(r.path, err)
	}

	r.version = file.Version
	r.components = file.Components
	return nil
}

// Save writes the catalog to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := registryFile{
		Version:    r.version,
		Components: r.components,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	// Write to temporary file first
	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// List returns all components sorted by name.
func (r *Registry) List() []Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Component, len(r.components))
	copy(result, r.components)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Get retrieves a component by name.
func (r *Registry) Get(name string) (Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.components {
		if c.Name == name {
			return c, nil
		}
	}

	return Component{}, apperrors.NewNotFoundError(name)
}

// Glob returns the components whose names match the doublestar pattern.
func (r *Registry) Glob(pattern string) ([]Component, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %q", pattern)
	}

	var result []Component
	for _, c := range r.List() {
		if matched, _ := doublestar.Match(pattern, c.Name); matched {
			result = append(result, c)
		}
	}
	return result, nil
}

// Search returns the components whose name or description contains the query,
// case-insensitively. An empty query matches everything.
func (r *Registry) Search(query string) []Component {
	query = strings.ToLower(strings.TrimSpace(query))
	all := r.List()
	if query == "" {
		return all
	}

	var result []Component
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Description), query) {
			result = append(result, c)
		}
	}
	return result
}

// Resolve returns the named component followed by its transitive registry
// dependencies, each exactly once, in install order.
func (r *Registry) Resolve(name string) ([]Component, error) {
	seen := make(map[string]bool)
	var result []Component

	var visit func(string) error
	visit = func(n string) error {
		if seen[n] {
			return nil
		}
		seen[n] = true

		component, err := r.Get(n)
		if err != nil {
			return err
		}
		result = append(result, component)

		for _, dep := range component.RegistryDependencies {
			if err := visit(dep); err != nil {
				return fmt.Errorf("resolving dependency of %q: %w", n, err)
			}
		}
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	return result, nil
}

func decode(data []byte) (registryFile, error) {
	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return registryFile{}, err
	}
	return file, nil
}
