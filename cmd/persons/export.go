package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flytam/filenamify"
	"github.com/jumppad-labs/personsmodel/persons"
	"github.com/spf13/cobra"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write every person to a JSON file named after the person",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := load(cmd, flags, pathArg(args))
			if err != nil {
				return err
			}

			ps, err := persons.FromEntities(c.Entities(persons.Name))
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("unable to create output directory: %w", err)
			}

			for _, p := range ps {
				file, err := exportPerson(dir, p.Clone().FormatOut())
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), file)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./export", "directory to write the files to")

	return cmd
}

// exportPerson writes p to dir as indented JSON, the file is named after the
// display name, or the public id when it is empty, with characters that are not valid in file names replaced
func exportPerson(dir string, p *persons.Person) (string, error) {
	base := p.DisplayName
	if base == "" {
		base = string(p.PubID)
	}

	name, err := filenamify.Filenamify(base, filenamify.Options{
		Replacement: "_",
	})
	if err != nil {
		return "", fmt.Errorf("unable to create file name for %s: %w", base, err)
	}

	d, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, name+".json")
	if err := os.WriteFile(file, d, 0644); err != nil {
		return "", fmt.Errorf("unable to write %s: %w", file, err)
	}

	return file, nil
}
