package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chisom-ui/chisom/internal/registry"
)

type addOptions struct {
	targetDir string
	overwrite bool
	dryRun    bool
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <component>",
		Short: "Copy a component and its registry dependencies into a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runAdd(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.targetDir, "dir", "d", ".", "Project directory to install into")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Overwrite files that already exist")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be installed without writing files")

	return cmd
}

func runAdd(cmd *cobra.Command, app *AppContext, name string, opts *addOptions) error {
	if strings.TrimSpace(name) == "" {
		return newCommandError("add", "validating component name", errors.New("component name cannot be empty"), "Provide the component you wish to install.")
	}

	log := app.Logger.WithComponent("add")

	reg, err := registry.NewRegistry(app.Settings.RegistryPath)
	if err != nil {
		return newCommandError("add", "loading component registry", err, "Check the registry file or run 'chisom sync' to fetch a fresh copy.")
	}

	// Resolve pulls in the transitive registry dependencies as well.
	resolved, err := reg.Resolve(name)
	if err != nil {
		return newCommandError("add", fmt.Sprintf("resolving component %q", name), err, "Run 'chisom list' to view the catalog.")
	}

	targetDir, err := filepath.Abs(opts.targetDir)
	if err != nil {
		return newCommandError("add", "resolving project directory", err, "Check the --dir value.")
	}

	sourceDir := app.Settings.RegistryCheckoutDir()

	installed := 0
	skipped := 0
	for _, component := range resolved {
		for _, file := range component.Files {
			src := filepath.Join(sourceDir, file.Path)
			dst := filepath.Join(targetDir, file.Target)
			if file.Target == "" {
				dst = filepath.Join(targetDir, file.Path)
			}

			if _, err := os.Stat(src); err != nil {
				return newCommandError("add", fmt.Sprintf("reading source file %q", file.Path), err, "Run 'chisom sync' to fetch the component sources.")
			}

			if _, err := os.Stat(dst); err == nil && !opts.overwrite {
				fmt.Fprintf(cmd.OutOrStdout(), "- skipped %s (already exists)\n", relOrAbs(targetDir, dst))
				skipped++
				continue
			}

			if opts.dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "+ would install %s\n", relOrAbs(targetDir, dst))
				installed++
				continue
			}

			if err := copyFile(src, dst); err != nil {
				return newCommandError("add", fmt.Sprintf("installing %q", file.Path), err, "Check disk space and directory permissions, then retry.")
			}

			log.WithFields(map[string]any{"component": component.Name, "file": file.Path}).Debug("installed file")
			fmt.Fprintf(cmd.OutOrStdout(), "+ installed %s\n", relOrAbs(targetDir, dst))
			installed++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n✓ %s: %d file(s) installed, %d skipped\n", name, installed, skipped)

	if deps := npmDependencies(resolved); len(deps) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nInstall the npm dependencies:\n  npm install %s\n", strings.Join(deps, " "))
	}

	return nil
}

// npmDependencies collects the deduplicated npm dependencies of the resolved
// set, sorted for stable output.
func npmDependencies(components []registry.Component) []string {
	seen := make(map[string]struct{})
	var deps []string
	for _, component := range components {
		for _, dep := range component.Dependencies {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			deps = append(deps, dep)
		}
	}
	sort.Strings(deps)
	return deps
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func relOrAbs(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
