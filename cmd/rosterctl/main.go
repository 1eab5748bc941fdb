package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "Employee roster server and spreadsheet tools",
	Long: `rosterctl runs the employee roster HTTP API and converts
spreadsheets of employees offline.

Available subcommands:
  serve  - Start the HTTP API
  import - Load a spreadsheet and write the resulting roster`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
