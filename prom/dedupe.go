package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DedupeLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniquestream_dedupe_lookups_total",
		Help: "The total number of dedupe lookups",
	})
	DedupePotentialDuplicates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniquestream_dedupe_potential_duplicates_total",
		Help: "The total number of lookups reported as possibly seen before",
	})
	DedupeInserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniquestream_dedupe_inserts_total",
		Help: "The total number of items added to the filter",
	})
)
