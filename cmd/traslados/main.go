// Package main provides the traslados CLI, the operator surface for the
// change-request core: radicado numbering, transition validation, program
// routing, and audit history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "traslados",
	Short: "Administer the group change-request core",
	Long: `traslados administers the change-request lifecycle core of the
academic-records system.

Commands operate directly on the durable stores:
  traslados radicar --request REQ-7        # issue the next radicado
  traslados last --year 2025               # last identifier issued for a year
  traslados stats                          # per-year allocation counts
  traslados validate PENDING IN_REVIEW     # check a state transition
  traslados resolve PROG-MED --request REQ-7
  traslados history REQ-7                  # audit trail, newest first
  traslados worker                         # run the fallback-alert worker`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("db", "traslados.db", "Path to the SQLite database")

	viper.SetDefault("database_path", "traslados.db")
	viper.SetDefault("default_program", "PROG-DEFAULT")
	viper.SetDefault("emergency_program", "PROG-EMERGENCY")
	viper.SetEnvPrefix("TRASLADOS")
	viper.AutomaticEnv()

	if f := rootCmd.PersistentFlags().Lookup("db"); f != nil {
		_ = viper.BindPFlag("database_path", f)
	}

	rootCmd.AddCommand(radicarCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(workerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
