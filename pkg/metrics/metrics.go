// Package metrics exposes the engine's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsProcessed counts ingested documents by kind.
	DocumentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "expense_engine",
		Name:      "documents_processed_total",
		Help:      "Documents run through the extraction pipeline.",
	}, []string{"kind"})

	// RecordsExtracted counts accepted expense records by winning strategy.
	RecordsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "expense_engine",
		Name:      "records_extracted_total",
		Help:      "Expense records accepted after dedup and validation.",
	}, []string{"strategy"})

	// PlaceholdersEmitted counts batches that yielded nothing extractable.
	PlaceholdersEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "expense_engine",
		Name:      "placeholders_emitted_total",
		Help:      "Batches that produced only the manual-entry placeholder.",
	})

	// CandidatesDiscarded counts extraction hypotheses rejected during
	// validation or dedup.
	CandidatesDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "expense_engine",
		Name:      "candidates_discarded_total",
		Help:      "Raw candidates dropped before assembly.",
	}, []string{"reason"})
)
