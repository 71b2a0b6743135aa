package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "buildify",
		Short:         "Buildify assembles mobile app mockups from drag-and-drop components",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, open the editor
			return runEdit(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a buildify.yaml config file")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newSaveCmd(flags))
	cmd.AddCommand(newLoadCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
