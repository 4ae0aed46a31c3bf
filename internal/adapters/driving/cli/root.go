// Package cli provides the cobra command tree for the bloodbank binary.
// It wires the driven adapters into the core services and hands them to
// the line shell or the terminal UI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driven/metrics"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/services"
	"github.com/custodia-labs/bloodbank-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	configDir string
	verbose   bool

	// app holds the services built for the running command.
	app *session
)

// session is the set of services shared by one invocation.
type session struct {
	registry *services.RegistryService
	query    *services.QueryService
	settings *services.SettingsService
	metrics  *metrics.Metrics
	config   domain.AppSettings
}

var rootCmd = &cobra.Command{
	Use:   "bloodbank",
	Short: "Blood bank donor and patient records",
	Long: `bloodbank keeps donor and patient records for a single session and answers
blood availability and compatibility questions.

Run without arguments for the numbered menu shell, or use "bloodbank tui"
for the full-screen interface. Records are held in memory only.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.bloodbank)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "write debug logs to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and builds the services for the command.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	config, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	settingsService := services.NewSettingsService(config)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if settings.Logging.Verbose {
		logger.SetVerbose(true)
	}
	logger.Debug("config: %s", config.Path())

	store := memory.NewRecordStore()
	m := metrics.New()

	registry := services.NewRegistryService(store)
	registry.SetMetrics(m)
	query := services.NewQueryService(store)
	query.SetMetrics(m)

	app = &session{
		registry: registry,
		query:    query,
		settings: settingsService,
		metrics:  m,
		config:   *settings,
	}
	return nil
}

func runShell(cmd *cobra.Command, _ []string) error {
	sh, err := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), app.registry, app.query, shell.Options{
		Settings: app.config.Shell,
		Styled:   isTerminal(cmd.OutOrStdout()),
	})
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}

	err = sh.Run(cmd.Context())
	logSessionMetrics()
	return err
}

// logSessionMetrics prints the counters gathered during the session.
func logSessionMetrics() {
	lines, err := app.metrics.Summary()
	if err != nil {
		logger.Warn("metrics unavailable: %v", err)
		return
	}
	logger.Section("Session metrics", lines)
}

// isTerminal reports whether stream is an interactive terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

