package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/dedupe"
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/prom"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/spf13/cobra"
)

var uniqueOnly bool
var metricsAddr string

var streamCmd = &cobra.Command{
	Use:   "stream [file...]",
	Short: "Dedupe newline separated posts",
	Long: `Reads posts one per line from the named files, or stdin, and checks each against a single filter.

By default every line is printed with its verdict. With --unique only lines not seen
before are printed, similar to an unsorted uniq that may drop a small fraction of
unique lines.`,
	Run: func(cmd *cobra.Command, args []string) {
		if metricsAddr != "" {
			go prom.ExportStreamMetrics(time.Second)
			go prom.StartStandalonePromServer(metricsAddr)
		}
		ctx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancelFunc()
		// flush source summaries before exit
		defer st.CloseFileLogs()

		checker, err := newChecker()
		if err != nil {
			fmt.Println("Error creating filter:", err)
			os.Exit(1)
		}
		mode := dedupe.StreamVerdicts
		if uniqueOnly {
			mode = dedupe.StreamUniqueOnly
		}
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, name := range args {
			in := os.Stdin
			if name != "-" {
				in, err = os.Open(name)
				if err != nil {
					st.Logger.Warn().Err(err).Str("source", name).Msg("unable to open")
					continue
				}
			}
			counts, err := checker.Stream(ctx, in, cmd.OutOrStdout(), mode)
			if in != os.Stdin {
				in.Close()
			}
			if err != nil {
				fmt.Println("Error streaming posts:", err)
				os.Exit(1)
			}
			summary := checker.LogStreamSummary(name, counts)
			st.Logger.Info().Str("source", name).Int("read", summary.Read).Int("unique", summary.Unique).
				Int("duplicates", summary.PotentialDuplicates).Float64("fill_ratio", summary.FillRatio).Msg("finished source")
		}
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().BoolVar(&uniqueOnly, "unique", false, "only print lines not seen before")
	streamCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while streaming")
}
