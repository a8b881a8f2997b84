// Package root contains the root command for the application
package root

import (
	"sync"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the store and report generator once PersistentPreRunE ran
	AppContainer *container.Container

	// Viper is the configuration instance the persistent flags are bound to
	Viper *viper.Viper = config.NewViper(config.DefaultSearchPaths()...)

	cfgFile  string
	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A CLI tool to record expenses and summarize them by day, week and month.",
		Long: `expense-tracker keeps dated expense entries (date, category, description, price)
in a CSV file. Entries can be added, listed, edited and deleted, and totals
are reported per day, ISO week and calendar month.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
	}
)

// Init registers the persistent flags and binds them to Viper. It is safe to
// call more than once.
func Init() {
	initOnce.Do(func() {
		pf := Cmd.PersistentFlags()
		pf.StringVar(&cfgFile, "config", "", "Config file (default: $HOME/.expense-tracker/config.yaml)")
		pf.StringP("file", "f", store.DefaultFile, "Expense CSV file")
		pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		pf.String("log-format", "text", "Log format (text or json)")
		pf.String("format", "text", "Output format (text, csv, json or yaml)")
		pf.Bool("legacy-escape", false, "Store commas in descriptions as semicolons")

		_ = Viper.BindPFlag("storage.file", pf.Lookup("file"))
		_ = Viper.BindPFlag("log.level", pf.Lookup("log-level"))
		_ = Viper.BindPFlag("log.format", pf.Lookup("log-format"))
		_ = Viper.BindPFlag("report.format", pf.Lookup("format"))
		_ = Viper.BindPFlag("csv.legacy_escape", pf.Lookup("legacy-escape"))
	})
}

// Setup loads .env and the configuration, then builds the logger and
// AppContainer. The store file is read once here.
func Setup() error {
	config.LoadEnv()
	if cfgFile != "" {
		Viper.SetConfigFile(cfgFile)
	}

	cfg, err := config.Load(Viper)
	if err != nil {
		return err
	}
	Log = config.ConfigureLoggingFromConfig(cfg)

	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		Log.WithError(err).Error("Failed to initialize application",
			logging.F(logging.FieldFile, cfg.Storage.File))
		return err
	}
	AppContainer = c
	return nil
}
