package registry

import (
	"github.com/charmbracelet/lipgloss"
)

// Component is a single entry in the Chisom UI registry: a named, copy-paste
// unit with its npm dependencies, cross-referenced registry items and the
// files the CLI installs into a project.
type Component struct {
	Name                 string        `json:"name"`
	Type                 ComponentType `json:"type"`
	Description          string        `json:"description"`
	Dependencies         []string      `json:"dependencies,omitempty"`
	RegistryDependencies []string      `json:"registryDependencies,omitempty"`
	Files                []File        `json:"files"`
}

// File describes one source file belonging to a component.
type File struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
}

// ComponentType is the registry type tag of a component.
type ComponentType string

const (
	TypeUI    ComponentType = "registry:ui"
	TypeHook  ComponentType = "registry:hook"
	TypeLib   ComponentType = "registry:lib"
	TypeBlock ComponentType = "registry:block"
)

// Label returns the short human-readable form of the type tag.
func (t ComponentType) Label() string {
	switch t {
	case TypeUI:
		return "ui"
	case TypeHook:
		return "hook"
	case TypeLib:
		return "lib"
	case TypeBlock:
		return "block"
	default:
		return string(t)
	}
}

// Icon returns the Unicode icon for the component type.
func (t ComponentType) Icon() string {
	switch t {
	case TypeUI:
		return "🧩"
	case TypeHook:
		return "🪝"
	case TypeLib:
		return "📚"
	case TypeBlock:
		return "🧱"
	default:
		return "📦"
	}
}

// IconFallback returns ASCII fallback when Unicode is not supported.
func (t ComponentType) IconFallback() string {
	switch t {
	case TypeUI:
		return "[ui]"
	case TypeHook:
		return "[hk]"
	case TypeLib:
		return "[lb]"
	case TypeBlock:
		return "[bk]"
	default:
		return "[??]"
	}
}

// Color returns the Lipgloss color for the component type badge.
func (t ComponentType) Color() lipgloss.Color {
	switch t {
	case TypeUI:
		return lipgloss.Color("39") // blue
	case TypeHook:
		return lipgloss.Color("212") // pink
	case TypeLib:
		return lipgloss.Color("42") // green
	case TypeBlock:
		return lipgloss.Color("214") // orange
	default:
		return lipgloss.Color("250") // light gray
	}
}

// registryFile is the JSON layout of a registry file on disk.
type registryFile struct {
	Version    string      `json:"version"`
	Components []Component `json:"components"`
}
