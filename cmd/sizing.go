package cmd

import (
	"fmt"
	"os"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/bloom"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var sizingItems int
var sizingFP float64

var sizingCmd = &cobra.Command{
	Use:   "sizing",
	Short: "Print filter dimensions for a capacity and false positive rate",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		params, err := bloom.EstimateParameters(sizingItems, sizingFP)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "items:\t%s\n", humanize.Comma(int64(sizingItems)))
		fmt.Fprintf(out, "fp:\t%v\n", sizingFP)
		fmt.Fprintf(out, "bits:\t%s\n", humanize.Comma(int64(params.Size)))
		fmt.Fprintf(out, "hashes:\t%d\n", params.HashCount)
		fmt.Fprintf(out, "memory:\t%s\n", humanize.IBytes(params.Bytes()))
	},
}

func init() {
	rootCmd.AddCommand(sizingCmd)

	sizingCmd.Flags().IntVar(&sizingItems, "items", 1_000_000, "expected number of unique items")
	sizingCmd.Flags().Float64Var(&sizingFP, "fp", 0.001, "target false positive probability")
}
