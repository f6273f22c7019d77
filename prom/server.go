package prom

import (
	"net/http"

	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Starts a HTTP server just for Prometheus, for commands that don't run the restapi
func StartStandalonePromServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	st.Logger.Info().Str("addr", addr).Msg("launching metrics server")

	err := http.ListenAndServe(addr, mux)
	if err != nil {
		st.Logger.Error().Err(err).Msg("failed to listen for prometheus metrics")
	}
}
