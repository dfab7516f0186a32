package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chisom-ui/chisom/internal/registry"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <component>",
		Short: "Show detailed information about a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output component details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, name string, opts *showOptions) error {
	if strings.TrimSpace(name) == "" {
		return newCommandError("show", "validating component name", errors.New("component name cannot be empty"), "Provide the component you wish to inspect.")
	}

	reg, err := registry.NewRegistry(app.Settings.RegistryPath)
	if err != nil {
		return newCommandError("show", "loading component registry", err, "Check the registry file or run 'chisom sync' to fetch a fresh copy.")
	}

	component, err := reg.Get(name)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up component %q", name), err, "Run 'chisom list' to view the catalog.")
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, component)
	}

	return renderShowTable(cmd, component)
}

func renderShowTable(cmd *cobra.Command, component registry.Component) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Component: %s\n", component.Name)
	fmt.Fprintf(out, "Type:      %s\n", formatType(component.Type, supportsUnicode(out)))
	fmt.Fprintf(out, "\nDescription:\n  %s\n\n", valueOrFallback(component.Description, "(none)"))

	fmt.Fprintf(out, "npm dependencies:      %s\n", joinOrNone(component.Dependencies))
	fmt.Fprintf(out, "Registry dependencies: %s\n", joinOrNone(component.RegistryDependencies))

	fmt.Fprintln(out, "\nFiles:")
	for _, file := range component.Files {
		line := "  " + file.Path
		if file.Target != "" {
			line += " -> " + file.Target
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintf(out, "\nInstall with:\n  chisom add %s\n", component.Name)
	return nil
}

func renderShowJSON(cmd *cobra.Command, component registry.Component) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(component)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
