package cli

import (
	"fmt"
	"strings"

	"github.com/scaffoldx/scaffoldx-django/internal/branding"
	"github.com/scaffoldx/scaffoldx-django/internal/config"
	"github.com/scaffoldx/scaffoldx-django/internal/django"
	"github.com/scaffoldx/scaffoldx-django/internal/pipeline"
	"github.com/scaffoldx/scaffoldx-django/internal/shell"
	"github.com/spf13/cobra"
)

var (
	newPackage     string
	newPretend     bool
	newForce       bool
	newUpdate      bool
	newListActions bool

	// enabled holds one flag value per extension, keyed by extension name.
	enabled = map[string]*bool{}
)

func init() {
	newCmd.Flags().StringVarP(&newPackage, "package", "p", "", "Python package name (default: derived from the directory name)")
	newCmd.Flags().BoolVar(&newPretend, "pretend", false, "Report what would be done without writing anything")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Scaffold into an existing directory")
	newCmd.Flags().BoolVar(&newUpdate, "update", false, "Update an existing project")
	newCmd.Flags().BoolVar(&newListActions, "list-actions", false, "Print the actions that would run, in order, and exit")
	for _, ext := range extensions(config.Current()) {
		enabled[ext.Name()] = newCmd.Flags().Bool(strings.TrimPrefix(ext.Flag(), "--"), false, ext.Help())
	}
	rootCmd.AddCommand(newCmd)
}

// extensions returns every extension known to the CLI, configured from s.
func extensions(s config.Settings) []pipeline.Extension {
	return []pipeline.Extension{
		django.New(
			django.WithGenerator(shell.New(s.GeneratorCommand)),
			django.WithRequirement(s.GeneratorRequirement),
		),
	}
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new Python project",
	Long: `Create a new Python project skeleton at <path>.

Examples:
  ` + branding.CLIName() + ` new my-site --django
  ` + branding.CLIName() + ` new my-site --django --pretend
  ` + branding.CLIName() + ` new my-site --django --list-actions`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &pipeline.Options{
			ProjectPath: args[0],
			Package:     newPackage,
			Pretend:     newPretend,
			Force:       newForce,
			Update:      newUpdate,
		}

		var active []pipeline.Extension
		for _, ext := range extensions(config.Current()) {
			if on := enabled[ext.Name()]; on != nil && *on {
				active = append(active, ext)
			}
		}

		actions, err := pipeline.ActivateExtensions(pipeline.DefaultActions(), opts, active...)
		if err != nil {
			return err
		}

		if newListActions {
			for _, name := range pipeline.Names(actions) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		_, _, err = pipeline.Run(cmd.Context(), actions, pipeline.Structure{}, opts)
		return err
	},
}
