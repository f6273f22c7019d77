package cmd

import (
	"net/http"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/bloom"
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/dedupe"
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/restapi"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/spf13/cobra"
)

// newChecker builds the dedupe checker described by settings.
func newChecker() (*dedupe.Checker, error) {
	// settings are validated on load so the hash is known
	hasher, _ := bloom.HasherByName(st.Filter.Hash)
	return dedupe.NewChecker(st.Filter.ExpectedItems, st.Filter.FPProbability, bloom.WithHasher(hasher))
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Launch the uniquestream server",
	Long:  `Starts the HTTP server with a single filter sized from US.FILTER.* settings.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		checker, err := newChecker()
		if err != nil {
			st.Logger.Fatal().Err(err).Msg("could not create filter")
		}
		stats := checker.Stats()
		st.Logger.Info().Int("expected_items", stats.ExpectedItems).Float64("fp_probability", stats.FPProbability).
			Uint64("size", stats.Size).Uint64("hash_count", stats.HashCount).Msg("filter created")

		srv := restapi.NewServer(checker, st.Restapi)
		server := &http.Server{
			Addr:        st.Settings.ListenAddr,
			Handler:     srv.Router,
			ReadTimeout: st.Restapi.ReadTimeout,
		}
		st.Logger.Info().Str("addr", server.Addr).Msg("listening")
		st.Logger.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
