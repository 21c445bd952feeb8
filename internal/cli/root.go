// Package cli implements the command-line interface for twophase.
package cli

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// envConfig holds defaults read from the environment; flags override.
type envConfig struct {
	DBPath    string `env:"TWOPHASE_DB"`
	Workers   int    `env:"TWOPHASE_WORKERS"`
	MaxLength int    `env:"TWOPHASE_MAX_LEN"`
}

var (
	// Global flags
	dbPath  string
	verbose bool

	envDefaults envConfig
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twophase",
	Short: "Two-phase Rubik's cube solver",
	Long: `Two-phase Rubik's cube solver with symmetry-reduced pruning tables.

Solve scrambles given in standard face-turn notation, generate random-state
scrambles, and keep a local history of solves.

All lookup tables are generated on startup, which takes a moment.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := env.Parse(&envDefaults); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.twophase/twophase.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag, environment or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return envDefaults.DBPath // empty means the storage default
}

func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
