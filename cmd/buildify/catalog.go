package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/document"
)

type catalogOptions struct {
	category string
	search   string
}

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the components available in the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list components in this category")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Fuzzy search component kinds and names")

	return cmd
}

func runCatalog(cmd *cobra.Command, flags *rootFlags, opts *catalogOptions) error {
	app, err := newAppContext(cmd, flags, "list components")
	if err != nil {
		return err
	}

	var entries []catalog.Entry
	switch {
	case opts.search != "":
		entries = app.Catalog.Search(opts.search)
	case opts.category != "":
		entries = app.Catalog.ByCategory(document.Category(opts.category))
	default:
		entries = app.Catalog.Entries()
	}

	if opts.category != "" && opts.search != "" {
		filtered := entries[:0:0]
		for _, entry := range entries {
			if string(entry.Category) == opts.category {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components match.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KIND\tNAME\tCATEGORY\tCONTAINER")
	for _, entry := range entries {
		container := "no"
		if entry.Container {
			container = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", entry.Kind, entry.Name, entry.Category, container)
	}
	return writer.Flush()
}
