package main

import (
	"fmt"
	"slices"

	"github.com/jumppad-labs/personsmodel"
	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/persons"
	"github.com/jumppad-labs/personsmodel/resources"
	"github.com/spf13/cobra"
)

type listFlags struct {
	sort      string
	format    string
	template  string
	showEmpty bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	lf := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List persons in the given sort order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := load(cmd, flags, pathArg(args))
			if err != nil {
				return err
			}

			entries, err := sortEntries(r, c.FindEntriesByType(persons.Name), lf.sort)
			if err != nil {
				return err
			}

			opts := []personsmodel.PrinterOption{
				personsmodel.WithWriter(cmd.OutOrStdout()),
				personsmodel.WithShowEmpty(lf.showEmpty),
				personsmodel.WithTemplate(lf.template),
			}

			if flags.noColor {
				opts = append(opts, personsmodel.WithColor(false))
			}

			return personsmodel.NewEntryPrinter(opts...).PrintEntries(entries, personsmodel.PrintFormat(lf.format))
		},
	}

	cmd.Flags().StringVar(&lf.sort, "sort", "", "sort option, defaults to the resource's default sort")
	cmd.Flags().StringVar(&lf.format, "format", string(personsmodel.FormatTable), "output format: table, json or template")
	cmd.Flags().StringVar(&lf.template, "template", "", "handlebars template used with --format template, i.e. '{{name}} {{values.email}}'")
	cmd.Flags().BoolVar(&lf.showEmpty, "show-empty", false, "show unset fields in table output")

	return cmd
}

type personEntry struct {
	entry  *personsmodel.Entry
	person *persons.Person
}

// sortEntries orders entries using the named sort option of the persons
// resource, an empty option uses the default
func sortEntries(r *resources.Registry, entries []*personsmodel.Entry, option string) ([]*personsmodel.Entry, error) {
	conf, err := resources.LookupConf[*persons.Person](r, persons.ResourceName)
	if err != nil {
		return nil, err
	}

	if option == "" {
		option = conf.SortDefault
	}

	cmp, err := conf.Sort.Get(option)
	if err != nil {
		return nil, errors.NewConfigError(persons.ResourceName, fmt.Sprintf("unknown sort option '%s', valid options are %v", option, conf.Sort.Values()))
	}

	pes := make([]personEntry, 0, len(entries))
	for _, e := range entries {
		p, err := persons.FromEntity(e.Entity)
		if err != nil {
			return nil, err
		}

		pes = append(pes, personEntry{e, p})
	}

	slices.SortStableFunc(pes, func(a, b personEntry) int {
		return cmp(a.person, b.person)
	})

	sorted := make([]*personsmodel.Entry, 0, len(pes))
	for _, pe := range pes {
		sorted = append(sorted, pe.entry)
	}

	return sorted, nil
}
