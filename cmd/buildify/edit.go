package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buildify/internal/tui/editor"
)

type editOptions struct {
	templateID string
}

func newEditCmd(flags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive mockup editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditWith(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.templateID, "template", "t", "", "Start from a template instead of an empty app")

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags) error {
	return runEditWith(cmd, flags, &editOptions{})
}

func runEditWith(cmd *cobra.Command, flags *rootFlags, opts *editOptions) error {
	app, err := newAppContext(cmd, flags, "edit")
	if err != nil {
		return err
	}

	if opts.templateID != "" {
		if err := applyTemplate(app, opts.templateID); err != nil {
			return newCommandError("edit", fmt.Sprintf("loading template %q", opts.templateID), err, "Run 'buildify templates' to list available templates.")
		}
	}

	m := editor.NewModel(editor.Deps{
		Store:    app.Store,
		Catalog:  app.Catalog,
		Gallery:  app.Gallery,
		Renderer: app.Renderer,
		Builder:  app.Builder,
		Logger:   app.Logger,
		Context:  cmd.Context(),
		Accent:   app.Config.AccentColor,
	})

	app.Logger.Info("launching editor")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "editor execution failed")
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
