package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chisom-ui/chisom/internal/registry/gitsync"
)

type syncOptions struct {
	repo   string
	branch string
	depth  int
}

func newSyncCmd(flags *rootFlags) *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the catalog from the upstream registry repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runSync(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "", "Registry repository URL (overrides the configured one)")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch to sync (defaults to the remote default)")
	cmd.Flags().IntVar(&opts.depth, "depth", 1, "Clone depth; 0 means full history")

	return cmd
}

func runSync(cmd *cobra.Command, app *AppContext, opts *syncOptions) error {
	log := app.Logger.WithComponent("sync")

	url := opts.repo
	if url == "" {
		url = app.Settings.RegistryRepo
	}
	if url == "" {
		return newCommandError("sync", "determining registry repository", fmt.Errorf("no repository configured"), "Set registry_repo in your config file or pass --repo.")
	}

	checkoutDir := app.Settings.RegistryCheckoutDir()

	result, err := gitsync.Sync(cmd.Context(), gitsync.Options{
		URL:    url,
		Dir:    checkoutDir,
		Branch: opts.branch,
		Depth:  opts.depth,
	}, log)
	if err != nil {
		return newCommandError("sync", fmt.Sprintf("syncing %q", url), err, "Check the repository URL and your network connection.")
	}

	switch {
	case result.Cloned:
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cloned registry (%s)\n", shortHash(result.Head))
	case result.UpToDate:
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Registry already up to date (%s)\n", shortHash(result.Head))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated registry (%s)\n", shortHash(result.Head))
	}

	// A registry.json in the checkout becomes the active catalog; the
	// browser's watcher picks the change up automatically.
	if err := adoptRegistryFile(checkoutDir, app.Settings.RegistryPath); err != nil {
		return newCommandError("sync", "installing the synced registry file", err, "Check permissions on your state directory.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Catalog: %s\n", app.Settings.RegistryPath)
	return nil
}

func adoptRegistryFile(checkoutDir, registryPath string) error {
	src := gitsync.RegistryFile(checkoutDir)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("the synced repository has no registry.json")
		}
		return err
	}
	return copyFile(src, registryPath)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
