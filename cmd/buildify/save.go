package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type saveOptions struct {
	templateID string
	clipboard  bool
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func newSaveCmd(flags *rootFlags) *cobra.Command {
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Print the project as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.templateID, "template", "t", "", "Save a template instead of the default app")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Also copy the JSON to the system clipboard")

	return cmd
}

func runSave(cmd *cobra.Command, flags *rootFlags, opts *saveOptions) error {
	app, err := newAppContext(cmd, flags, "save")
	if err != nil {
		return err
	}

	doc, err := app.documentFor(opts.templateID)
	if err != nil {
		return newCommandError("save", fmt.Sprintf("looking up template %q", opts.templateID), err, "Run 'buildify templates' to view available templates.")
	}

	data, err := app.Builder.Save(doc)
	if err != nil {
		return newCommandError("save", "encoding project", err, "Report this as a bug.")
	}

	if opts.clipboard {
		if err := writeClipboard(string(data)); err != nil {
			return newCommandError("save", "copying to clipboard", err, "Install xclip, xsel or wl-clipboard, or drop --clipboard.")
		}
		app.Logger.Info("project copied to clipboard")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func newLoadCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load a saved project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, "load")
			if err != nil {
				return err
			}
			if _, err := app.Builder.Load(); err != nil {
				return newCommandError("load", "reading project", err, "Use 'buildify edit --template <id>' for now.")
			}
			return nil
		},
	}
}
