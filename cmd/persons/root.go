package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jumppad-labs/personsmodel"
	"github.com/jumppad-labs/personsmodel/logger"
	"github.com/jumppad-labs/personsmodel/persons"
	"github.com/jumppad-labs/personsmodel/resources"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	variables     map[string]string
	ignoreUnknown bool
	debug         bool
	noColor       bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "persons",
		Short:         "Check, list and export persons defined in HCL config files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringToStringVar(&flags.variables, "var", map[string]string{}, "set a variable, i.e. --var phone=5555555555")
	cmd.PersistentFlags().BoolVar(&flags.ignoreUnknown, "ignore-unknown", false, "ignore attributes that are not person fields")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newCheckCmd(flags),
		newListCmd(flags),
		newExportCmd(flags),
	)

	return cmd
}

// load parses path, which is either a single file or a directory of .hcl
// files, and returns the loaded config along with the registry used to load
// it. Load errors are printed to the command's error output.
func load(cmd *cobra.Command, flags *rootFlags, path string) (*personsmodel.Config, *resources.Registry, error) {
	level := log.InfoLevel
	if flags.debug {
		level = log.DebugLevel
	}

	l := logger.NewStdOutLoggerWithOptions(cmd.ErrOrStderr(), level)

	r := resources.NewRegistry(l)
	if err := persons.Register(r); err != nil {
		return nil, nil, err
	}

	if err := r.Verify(); err != nil {
		return nil, nil, err
	}

	o := personsmodel.DefaultOptions()
	o.Logger = l
	o.IgnoreUnknown = flags.ignoreUnknown
	for k, v := range flags.variables {
		o.Variables[k] = v
	}

	p := personsmodel.NewParser(r, o)

	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}

	var c *personsmodel.Config
	if fi.IsDir() {
		c, err = p.ParseDirectory(path)
	} else {
		c, err = p.ParseFile(path)
	}

	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil, nil, fmt.Errorf("unable to load %s", path)
	}

	return c, r, nil
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return args[0]
}
