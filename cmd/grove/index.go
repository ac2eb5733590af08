package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ltao/grove"
	"github.com/ltao/grove/internal/config"
)

var (
	flagConfig       string
	flagOntology     string
	flagAnnotations  string
	flagHousekeeping string
	flagMappings     []string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest data sources into the database",
	Long:  "Parses the ontology, annotation, housekeeping, and mapping sources named by flags or by a grove.yaml config file, and writes them to the SQLite database.",
	Args:  cobra.NoArgs,
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&flagConfig, "config", "", "grove.yaml naming the data sources")
	indexCmd.Flags().StringVar(&flagOntology, "ontology", "", "OBO ontology file (.obo or .obo.gz)")
	indexCmd.Flags().StringVar(&flagAnnotations, "annotations", "", "GAF annotation file (.gaf or .gaf.gz)")
	indexCmd.Flags().StringVar(&flagHousekeeping, "housekeeping", "", "housekeeping gene list, one identifier per line")
	indexCmd.Flags().StringArrayVar(&flagMappings, "mapping", nil, "identifier-mapping TSV (repeatable)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	start := time.Now()

	dbPath := flagDB
	src := grove.Sources{
		Ontology:     flagOntology,
		Annotations:  flagAnnotations,
		Housekeeping: flagHousekeeping,
		Mappings:     flagMappings,
	}
	if flagConfig != "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return outputError("index", err)
		}
		if !cmd.Flags().Changed("db") {
			dbPath = cfg.Database
		}
		src = grove.Sources{
			Ontology:     cfg.Ontology,
			Annotations:  cfg.Annotations,
			Housekeeping: cfg.Housekeeping,
			Mappings:     cfg.Mappings,
		}
	}
	if src.Ontology == "" && src.Annotations == "" && src.Housekeeping == "" && len(src.Mappings) == 0 {
		return outputError("index", fmt.Errorf("no data sources; pass --config or source flags"))
	}

	e, err := grove.Open(dbPath)
	if err != nil {
		return outputError("index", err)
	}
	defer e.Close()

	if err := e.Ingest(context.Background(), src); err != nil {
		return outputError("index", err)
	}

	summary := CLIIndexSummary{Database: dbPath, Elapsed: time.Since(start).Seconds()}
	for _, c := range []struct {
		table string
		dst   *int
	}{
		{"terms", &summary.Terms},
		{"annotations", &summary.Annotations},
		{"housekeeping_genes", &summary.Housekeeping},
		{"identifier_mappings", &summary.Mappings},
	} {
		if err := e.Store().DB().QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dst); err != nil {
			return outputError("index", fmt.Errorf("count %s: %w", c.table, err))
		}
	}
	return outputResult(CLIResult{Command: "index", Results: summary})
}
