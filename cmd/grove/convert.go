package main

import (
	"github.com/spf13/cobra"

	"github.com/ltao/grove"
)

var (
	flagFrom string
	flagTo   string
	flagAll  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <identifier>...",
	Short: "Translate gene identifiers between namespaces",
	Long:  "Converts identifiers from one namespace to another using the loaded mapping tables. By default each input yields one output: the first candidate in table order, or the unresolved sentinel. With --all, every candidate is listed per input.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagFrom, "from", "", "source namespace (required)")
	convertCmd.Flags().StringVar(&flagTo, "to", "", "target namespace (required)")
	convertCmd.Flags().BoolVar(&flagAll, "all", false, "list every candidate per identifier instead of the first")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	e, err := grove.Open(flagDB)
	if err != nil {
		return outputError("convert", err)
	}
	defer e.Close()

	r, err := e.Resolver(flagFrom, flagTo)
	if err != nil {
		return outputError("convert", err)
	}

	if flagAll {
		out := make([]CLIResolution, len(args))
		for i, id := range args {
			res := r.Resolve(id)
			out[i] = CLIResolution{Query: res.Query, Candidates: res.Candidates}
		}
		return outputResult(CLIResult{Command: "convert", Results: out})
	}
	return outputResult(CLIResult{Command: "convert", Results: r.ConvertList(args)})
}
