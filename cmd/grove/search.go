package main

import (
	"github.com/spf13/cobra"

	"github.com/ltao/grove"
)

var (
	flagExact     bool
	flagWithGenes bool
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>...",
	Short: "Find ontology terms by keyword",
	Long:  "Matches keywords case-insensitively against term names and synonyms. Without --exact, substring matches count and every match expands to its full descendant closure.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var genesCmd = &cobra.Command{
	Use:   "genes <term-id>...",
	Short: "List genes annotated to terms or their descendants",
	Long:  "Returns every gene directly annotated to any given term or to any of its descendants. Unknown term identifiers are an error naming each offender.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenes,
}

var housekeepingCmd = &cobra.Command{
	Use:   "housekeeping",
	Short: "List the housekeeping reference gene set",
	Args:  cobra.NoArgs,
	RunE:  runHousekeeping,
}

func init() {
	searchCmd.Flags().BoolVar(&flagExact, "exact", false, "keywords must equal the name or synonym; no descendant expansion")
	searchCmd.Flags().BoolVar(&flagWithGenes, "genes", false, "output the aggregated gene set instead of the matched terms")
}

func openSearcher() (*grove.Searcher, func(), error) {
	e, err := grove.Open(flagDB)
	if err != nil {
		return nil, nil, err
	}
	s, err := e.Searcher()
	if err != nil {
		e.Close()
		return nil, nil, err
	}
	return s, func() { e.Close() }, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, done, err := openSearcher()
	if err != nil {
		return outputError("search", err)
	}
	defer done()

	ids := s.KeywordSearch(args, flagExact)
	if flagWithGenes {
		genes, err := s.Genes(ids)
		if err != nil {
			return outputError("search", err)
		}
		return outputResult(CLIResult{Command: "search", Results: genes})
	}

	terms := make([]CLITerm, 0, len(ids))
	for _, id := range ids {
		t, err := s.Graph().TermByID(id)
		if err != nil {
			return outputError("search", err)
		}
		terms = append(terms, CLITerm{ID: t.ID, Name: t.Name, Namespace: t.Namespace, Synonyms: t.Synonyms})
	}
	return outputResult(CLIResult{Command: "search", Results: terms})
}

func runGenes(cmd *cobra.Command, args []string) error {
	s, done, err := openSearcher()
	if err != nil {
		return outputError("genes", err)
	}
	defer done()

	genes, err := s.Genes(args)
	if err != nil {
		return outputError("genes", err)
	}
	return outputResult(CLIResult{Command: "genes", Results: genes})
}

func runHousekeeping(cmd *cobra.Command, args []string) error {
	s, done, err := openSearcher()
	if err != nil {
		return outputError("housekeeping", err)
	}
	defer done()
	return outputResult(CLIResult{Command: "housekeeping", Results: s.HousekeepingGenes()})
}
