package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chisom",
		Short:         "Chisom UI is a terminal catalog of copy-paste components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the browser
			if len(args) == 0 {
				app, err := newAppContext(flags)
				if err != nil {
					return err
				}
				return runBrowse(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newSyncCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
