package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uniquestream",
	Short: "Probabilistic duplicate detection for streams of posts",
	Long: `UniqueStream flags repeated content in a stream of posts without storing the posts.

A bloom filter sized for the expected number of unique posts answers either
"Unique Content" (definitely never seen) or "Potential Duplicate" (possibly seen,
with a configurable false positive rate).

The filter can be served over HTTP, run over lines on stdin, or exercised with a
demo scenario. Filter settings are read from US.* environment variables.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
