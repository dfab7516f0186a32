package docs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chisom-ui/chisom/internal/components"
	"github.com/chisom-ui/chisom/internal/registry"
)

const cacheSize = 128

// Renderer produces the installation instructions shown for a component.
// Rendered output is cached because the browser re-renders on every cursor
// move and the content only changes when the catalog does.
type Renderer struct {
	theme components.Theme
	cache *lru.Cache[string, string]
}

// NewRenderer creates a Renderer with the given theme.
func NewRenderer(theme components.Theme) (*Renderer, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs cache: %w", err)
	}
	return &Renderer{theme: theme, cache: cache}, nil
}

// Invalidate drops all cached renderings, e.g. after a registry reload.
func (r *Renderer) Invalidate() {
	r.cache.Purge()
}

// Install renders the install instructions for a component at the given width.
func (r *Renderer) Install(component registry.Component, width int) string {
	key := fmt.Sprintf("%s|%d", component.Name, width)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	rendered := r.render(component, width)
	r.cache.Add(key, rendered)
	return rendered
}

func (r *Renderer) render(component registry.Component, width int) string {
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(r.theme.Primary)
	commandStyle := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Background(r.theme.Surface).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(r.theme.Muted)

	var b strings.Builder

	b.WriteString(headingStyle.Render("Installation"))
	b.WriteString("\n\n")
	b.WriteString(commandStyle.Render("chisom add " + component.Name))
	b.WriteString("\n")

	if len(component.Dependencies) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("npm dependencies: "))
		b.WriteString(strings.Join(component.Dependencies, ", "))
		b.WriteString("\n")
	}

	if len(component.RegistryDependencies) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Registry dependencies: "))
		b.WriteString(strings.Join(component.RegistryDependencies, ", "))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("These are installed automatically."))
		b.WriteString("\n")
	}

	if len(component.Files) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Files:"))
		b.WriteString("\n")
		for _, file := range component.Files {
			line := "  " + file.Path
			if file.Target != "" {
				line += " -> " + file.Target
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	rendered := b.String()
	if width > 0 {
		rendered = lipgloss.NewStyle().MaxWidth(width).Render(rendered)
	}
	return rendered
}
