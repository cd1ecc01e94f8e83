package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/scaffoldx/scaffoldx-django/internal/branding"
	"github.com/scaffoldx/scaffoldx-django/internal/config"
	"github.com/scaffoldx/scaffoldx-django/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates Python package skeletons. Extensions such as --django
hand parts of the project over to external generators and reshape their output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			// config validate reports the issues itself.
			var invalid *config.InvalidError
			if !errors.As(err, &invalid) || cmd != configValidateCmd {
				return err
			}
		}
		return setupLogging(cmd)
	},
}

// setupLogging installs the configured logger, tagged with a run id, in the
// command's context.
func setupLogging(cmd *cobra.Command) error {
	s := config.Current()
	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("config %s: %w", config.KeyLogLevel, err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = s.LogFormat
	cfg.Output = cmd.ErrOrStderr()
	l := logging.Init(cfg).With("run", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, l))
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the running pipeline.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return err
	}
	return nil
}
