package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chisom-ui/chisom/internal/registry"
)

type listOptions struct {
	jsonOutput bool
	filter     string
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the components in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Only list components whose name matches a glob (e.g. 'use-*')")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	reg, err := registry.NewRegistry(app.Settings.RegistryPath)
	if err != nil {
		return newCommandError("list", "loading component registry", err, "Check the registry file or run 'chisom sync' to fetch a fresh copy.")
	}

	var items []registry.Component
	if opts.filter != "" {
		items, err = reg.Glob(opts.filter)
		if err != nil {
			return newCommandError("list", fmt.Sprintf("matching pattern %q", opts.filter), err, "Use doublestar glob syntax, e.g. 'use-*' or '*picker*'.")
		}
	} else {
		items = reg.List()
	}

	if len(items) == 0 {
		return renderEmptyList(cmd, opts)
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, items)
	}

	return renderListTable(cmd, items)
}

func renderEmptyList(cmd *cobra.Command, opts *listOptions) error {
	if opts.filter != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No components match %q.\n", opts.filter)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'chisom sync' to fetch the upstream registry.")
	return nil
}

func renderListTable(cmd *cobra.Command, items []registry.Component) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tTYPE\tDESCRIPTION\tFILES")

	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, c := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n",
			c.Name,
			formatType(c.Type, useUnicode),
			truncateDescription(c.Description, 60),
			len(c.Files),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version    string               `json:"version"`
	Count      int                  `json:"count"`
	Components []registry.Component `json:"components"`
}

func renderListJSON(cmd *cobra.Command, items []registry.Component) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(items),
		Components: items,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatType(t registry.ComponentType, useUnicode bool) string {
	if useUnicode {
		return fmt.Sprintf("%s %s", t.Icon(), t.Label())
	}

	return fmt.Sprintf("%s %s", t.IconFallback(), t.Label())
}

func truncateDescription(desc string, max int) string {
	if len(desc) <= max {
		return desc
	}
	return strings.TrimSpace(desc[:max-3]) + "..."
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
