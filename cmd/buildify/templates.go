package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buildify/internal/store"
)

type templatesOptions struct {
	category string
}

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the app templates in the gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list templates in this category")

	return cmd
}

func runTemplates(cmd *cobra.Command, flags *rootFlags, opts *templatesOptions) error {
	app, err := newAppContext(cmd, flags, "list templates")
	if err != nil {
		return err
	}

	list := app.Gallery.ByCategory(opts.category)
	if len(list) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates in category %q.\n", opts.category)
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tSCREENS\tDESCRIPTION")
	for _, tmpl := range list {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			tmpl.ID,
			tmpl.Name,
			tmpl.Category,
			len(tmpl.Config.Screens),
			tmpl.Description,
		)
	}
	return writer.Flush()
}

func applyTemplate(app *AppContext, id string) error {
	tmpl, err := app.Gallery.ByID(id)
	if err != nil {
		return err
	}
	app.Store.Dispatch(store.ReplaceDocument{Document: tmpl.Document()})
	return nil
}
