package browser

import (
	tea "github.com/charmbracelet/bubbletea"
)

// waitForReloadCmd blocks on the watcher channel and converts the next
// reload notification into a message. It must be re-armed after each
// CatalogReloadedMsg.
func waitForReloadCmd(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return WatcherClosedMsg{}
		}
		return CatalogReloadedMsg{}
	}
}

// selectComponentCmd announces a selection; the update loop switches to the
// detail view when the message lands.
func selectComponentCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return ComponentSelectedMsg{Name: name}
	}
}

func backToListCmd() tea.Msg {
	return BackToListMsg{}
}

func clearErrorCmd() tea.Msg {
	return ClearErrorMsg{}
}
