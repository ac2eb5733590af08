package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagFormat string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "grove",
	Short:         "Ontology-driven gene search and identifier translation",
	Long:          "Grove ingests an ontology, gene annotations, and identifier-mapping tables into a SQLite database, then answers keyword searches, gene-set retrieval with inheritance over the term DAG, and identifier conversions.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "grove.db", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(genesCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(housekeepingCmd)
}
