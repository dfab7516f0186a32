package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chisom-ui/chisom/pkg/errors"
)

func testRegistry(t *testing.T, components []Component) *Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")

	r := &Registry{path: path, version: "1.0", components: components}
	require.NoError(t, r.Save())

	loaded, err := NewRegistry(path)
	require.NoError(t, err)
	return loaded
}

func sampleComponents() []Component {
	return []Component{
		{
			Name:                 "color-picker",
			Type:                 TypeUI,
			Description:          "Hex color input with recent-color history.",
			Dependencies:         []string{"react-colorful"},
			RegistryDependencies: []string{"use-local-storage"},
			Files: []File{
				{Path: "ui/color-picker.tsx", Type: "registry:ui", Target: "components/ui/color-picker.tsx"},
			},
		},
		{
			Name:        "search-input",
			Type:        TypeUI,
			Description: "Debounced search box.",
			Files: []File{
				{Path: "ui/search-input.tsx", Type: "registry:ui"},
			},
		},
		{
			Name:        "use-local-storage",
			Type:        TypeHook,
			Description: "Persist state to a local storage key.",
			Files: []File{
				{Path: "hooks/use-local-storage.ts", Type: "registry:hook"},
			},
		},
	}
}

func TestNewRegistryMissingFileUsesBuiltinCatalog(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	components := r.List()
	require.NotEmpty(t, components)

	picker, err := r.Get("color-picker")
	require.NoError(t, err)
	assert.Equal(t, TypeUI, picker.Type)
	require.NotEmpty(t, picker.Files)
	assert.Equal(t, "ui/color-picker.tsx", picker.Files[0].Path)
}

func TestNewRegistryCorruptFileIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := NewRegistry(path)
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestRegistryRoundTrip(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())
	assert.Len(t, r.List(), 3)

	component, err := r.Get("search-input")
	require.NoError(t, err)
	assert.Equal(t, "Debounced search box.", component.Description)
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())

	_, err := r.Get("does-not-exist")
	require.Error(t, err)

	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "does-not-exist", notFound.Name)
}

func TestRegistryListSortedByName(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())
	list := r.List()

	assert.Equal(t, "color-picker", list[0].Name)
	assert.Equal(t, "search-input", list[1].Name)
	assert.Equal(t, "use-local-storage", list[2].Name)
}

func TestRegistryGlob(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())

	matched, err := r.Glob("*-input")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "search-input", matched[0].Name)

	matched, err = r.Glob("use-*")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "use-local-storage", matched[0].Name)
}

func TestRegistryGlobInvalidPattern(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())
	_, err := r.Glob("[")
	require.Error(t, err)
}

func TestRegistrySearch(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())

	assert.Len(t, r.Search(""), 3)
	assert.Len(t, r.Search("  "), 3)

	results := r.Search("DEBOUNCED")
	require.Len(t, results, 1)
	assert.Equal(t, "search-input", results[0].Name)

	results = r.Search("history")
	require.Len(t, results, 1)
	assert.Equal(t, "color-picker", results[0].Name)

	assert.Empty(t, r.Search("no-such-thing"))
}

func TestRegistryResolveTransitive(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, sampleComponents())

	resolved, err := r.Resolve("color-picker")
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "color-picker", resolved[0].Name)
	assert.Equal(t, "use-local-storage", resolved[1].Name)
}

func TestRegistryResolveMissingDependency(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, []Component{
		{Name: "broken", Type: TypeUI, RegistryDependencies: []string{"ghost"}},
	})

	_, err := r.Resolve("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestRegistryResolveCycleTerminates(t *testing.T) {
	t.Parallel()

	r := testRegistry(t, []Component{
		{Name: "a", Type: TypeUI, RegistryDependencies: []string{"b"}},
		{Name: "b", Type: TypeHook, RegistryDependencies: []string{"a"}},
	})

	resolved, err := r.Resolve("a")
	require.NoError(t, err)
	assert.Len(t, resolved, 2)
}

func TestComponentTypeBadges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ui", TypeUI.Label())
	assert.Equal(t, "hook", TypeHook.Label())
	assert.Equal(t, "[ui]", TypeUI.IconFallback())
	assert.NotEmpty(t, TypeBlock.Icon())
	assert.NotEmpty(t, TypeLib.Color())
}
