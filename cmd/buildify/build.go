package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

type buildOptions struct {
	platform   string
	templateID string
}

func newBuildCmd(flags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Produce a placeholder app package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.platform, "platform", "p", "", "Target platform: android or ios (defaults to the configured device)")
	cmd.Flags().StringVarP(&opts.templateID, "template", "t", "", "Build a template instead of the default app")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *rootFlags, opts *buildOptions) error {
	app, err := newAppContext(cmd, flags, "build")
	if err != nil {
		return err
	}

	platform := app.Config.DeviceType()
	if opts.platform != "" {
		platform, err = document.ParseDeviceType(opts.platform)
		if err != nil {
			return newCommandError("build", "parsing platform", err, "Use --platform android or --platform ios.")
		}
	}

	doc, err := app.documentFor(opts.templateID)
	if err != nil {
		return newCommandError("build", fmt.Sprintf("looking up template %q", opts.templateID), err, "Run 'buildify templates' to view available templates.")
	}

	result, err := app.Builder.Build(cmd.Context(), doc, platform)
	if err != nil {
		return newCommandError("build", "building "+doc.Name, err, "Check output_dir and package_prefix in your config.")
	}

	cfg := result.Config
	fmt.Fprintf(cmd.OutOrStdout(), "App:      %s\n", cfg.AppName)
	fmt.Fprintf(cmd.OutOrStdout(), "Package:  %s\n", cfg.PackageName)
	fmt.Fprintf(cmd.OutOrStdout(), "Version:  %s\n", cfg.Version)
	fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", cfg.Platform)
	fmt.Fprintf(cmd.OutOrStdout(), "Output:   %s\n", result.Path)
	return nil
}
