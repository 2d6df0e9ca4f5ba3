package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eduvault/eduvault/internal/bootstrap"
)

var (
	// Global flags
	cfgFile string
	dbPath  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eduvault",
	Short: "EduVault - a local catalog of shared school resources",
	Long: `EduVault keeps a local catalog of shared educational resources.

Browse, upload, rate, save and comment on resource records, and keep a
history of simulated downloads. Everything persists in a single local
database file, so state survives between runs. No network, no accounts
beyond a display identity.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// withApp wires the full dependency stack for one command invocation:
// config, logger, database, repositories, services. The store loads its
// collections once here and every mutation persists before returning, so a
// command is a single request/response cycle against the catalog.
func withApp(fn func(app *bootstrap.App) error) error {
	app, err := bootstrap.Setup(cfgFile, dbPath)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "override the catalog database path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
