package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
)

type showOptions struct {
	format string
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <template-id>",
		Short: "Print the component tree of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "tree", "Output format: tree, yaml or json")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, id string, opts *showOptions) error {
	if strings.TrimSpace(id) == "" {
		return newCommandError("show", "validating template ID", fmt.Errorf("template ID cannot be empty"), "Provide the template ID you wish to inspect.")
	}

	app, err := newAppContext(cmd, flags, "show")
	if err != nil {
		return err
	}

	doc, err := app.documentFor(id)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up template %q", id), err, "Run 'buildify templates' to view available templates.")
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "tree":
		renderTree(out, doc)
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return newCommandError("show", "encoding YAML", err, "Try --format json.")
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	default:
		return newCommandError("show", "choosing output format", fmt.Errorf("unknown format %q", opts.format), "Use one of tree, yaml or json.")
	}
}

func renderTree(out io.Writer, doc document.AppDocument) {
	fmt.Fprintf(out, "%s (%s)\n", doc.Name, doc.ID)
	if doc.Description != "" {
		fmt.Fprintf(out, "  %s\n", doc.Description)
	}

	for _, screen := range doc.Screens {
		fmt.Fprintf(out, "\nScreen: %s (%s), %d components\n", screen.Name, screen.ID, screen.CountNodes())
		tree.Walk(screen.Components, func(node document.Node, depth int) bool {
			fmt.Fprintf(out, "%s- %s [%s] %s\n", strings.Repeat("  ", depth+1), node.Name, node.Kind, node.ID)
			return true
		})
	}

	fmt.Fprintf(out, "\nTheme: primary %s, secondary %s, background %s, text %s\n",
		doc.Theme.PrimaryColor, doc.Theme.SecondaryColor, doc.Theme.BackgroundColor, doc.Theme.TextColor)
}
