package cmd

import (
	"fmt"
	"os"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/demo"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/spf13/cobra"
)

var scenarioPath string
var withProduction bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demo scenario and print verdicts",
	Long: `Adds a batch of posts to a fresh filter, then prints the verdict for each post to check.

Without --scenario the built in scenario is used (1 million posts at 0.1%).
Scenario files are yaml, filter fields left out are taken from US.FILTER.* settings.`,
	Example: `uniquestream demo
uniquestream demo --production
uniquestream demo --scenario posts.yaml

# posts.yaml
filter:
  expected_items: 1000
  fp_probability: 0.01
add: ["first post", "second post"]
check: ["first post", "third post"]`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scenario := demo.DefaultScenario()
		if scenarioPath != "" {
			raw, err := os.ReadFile(scenarioPath)
			if err != nil {
				fmt.Println("Error reading scenario:", err)
				os.Exit(1)
			}
			defaults := demo.FilterConfig{
				ExpectedItems: st.Filter.ExpectedItems,
				FPProbability: st.Filter.FPProbability,
				Hash:          st.Filter.Hash,
			}
			scenario, err = demo.ParseScenario(raw, defaults)
			if err != nil {
				fmt.Println("Error parsing scenario:", err)
				os.Exit(1)
			}
		}
		if err := demo.Run(cmd.OutOrStdout(), scenario, withProduction); err != nil {
			fmt.Println("Error running demo:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&scenarioPath, "scenario", "", "yaml scenario file")
	demoCmd.Flags().BoolVar(&withProduction, "production", false, "also run the scenario against bits-and-blooms/bloom for comparison")
}
