package browser

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewDemo
	ViewHelp
)

// Navigation Messages

// ComponentSelectedMsg indicates a component was selected
type ComponentSelectedMsg struct {
	Name string
}

// BackToListMsg requests return to list view
type BackToListMsg struct{}

// Catalog Messages

// CatalogReloadedMsg indicates the registry file changed on disk and the
// catalog was reloaded.
type CatalogReloadedMsg struct{}

// WatcherClosedMsg indicates the file watcher shut down.
type WatcherClosedMsg struct{}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
