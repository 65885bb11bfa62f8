// Package service assembles expense records out of raw statement documents:
// normalization, strategy extraction, classification, tax annotation and
// dedup, in that order.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/expense-engine/internal/domain/categorize"
	"github.com/FACorreiaa/expense-engine/internal/domain/expense"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/normalize"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/parser"
	"github.com/FACorreiaa/expense-engine/internal/domain/tax"
	"github.com/FACorreiaa/expense-engine/pkg/metrics"
	"github.com/FACorreiaa/expense-engine/pkg/money"
)

// DocumentKind tells the pipeline how to read a document's text.
type DocumentKind string

const (
	// KindText is free statement text: pasted, OCRed or PDF-extracted.
	KindText DocumentKind = "text"
	// KindCSV is delimited text, including flattened spreadsheet sheets.
	KindCSV DocumentKind = "csv"
)

// Payment provenance recorded on extracted rows.
const (
	PaidByCard    = "Credit Card"
	PaidByCSV     = "CSV Import"
	PaidByReceipt = "Receipt"
)

// placeholderDescription is emitted when a whole batch yields nothing.
const placeholderDescription = "No expenses could be automatically extracted - please add manually"

// Document is one input to a processing batch.
type Document struct {
	Name string
	Kind DocumentKind
	Text string
}

// Request is a processing batch: one or more documents plus the shared
// jurisdiction, occupation hint and category set.
type Request struct {
	Documents  []Document
	Province   string
	Occupation string
	Categories []string
}

var ErrNoDocuments = errors.New("request contains no documents")

// DocumentFailure reports one document that could not be processed. It is a
// per-document hard failure; the rest of the batch continues.
type DocumentFailure struct {
	Document string `json:"document"`
	Reason   string `json:"error"`
}

// Service runs the extraction pipeline.
type Service struct {
	classifier categorize.Classifier
	fallback   *categorize.RuleClassifier
	cascade    *parser.Cascade
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a Service around the given classifier. The rule classifier
// always remains available as the degradation path when the configured
// classifier fails.
func New(classifier categorize.Classifier, logger *slog.Logger) *Service {
	return &Service{
		classifier: classifier,
		fallback:   categorize.NewRuleClassifier(),
		cascade:    parser.NewCascade(),
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the reference clock. Tests use it to pin "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Process runs every document through extraction and returns the combined
// record list in document order, plus any per-document failures. A failed
// document never aborts the batch. An empty outcome is never returned: when
// nothing could be extracted the result is exactly one placeholder record.
func (s *Service) Process(ctx context.Context, req Request) ([]expense.Record, []DocumentFailure, error) {
	if len(req.Documents) == 0 {
		return nil, nil, ErrNoDocuments
	}

	categories := req.Categories
	if len(categories) == 0 {
		categories = expense.DefaultCategories
	}

	batchID := uuid.New()
	dedupe := &deduper{}

	var records []expense.Record
	var failures []DocumentFailure
	for _, doc := range req.Documents {
		recs, err := s.processDocument(ctx, doc, req, categories, dedupe)
		if err != nil {
			s.logger.Warn("document failed",
				slog.String("batch_id", batchID.String()),
				slog.String("document", doc.Name),
				slog.Any("error", err))
			failures = append(failures, DocumentFailure{Document: doc.Name, Reason: err.Error()})
			continue
		}
		records = append(records, recs...)
	}

	if len(records) == 0 {
		metrics.PlaceholdersEmitted.Inc()
		s.logger.Warn("nothing extractable in batch, emitting placeholder",
			slog.String("batch_id", batchID.String()),
			slog.Int("documents", len(req.Documents)))
		records = append(records, s.placeholder())
	}

	s.logger.Info("batch processed",
		slog.String("batch_id", batchID.String()),
		slog.Int("documents", len(req.Documents)),
		slog.Int("failures", len(failures)),
		slog.Int("records", len(records)))

	return records, failures, nil
}

func (s *Service) processDocument(ctx context.Context, doc Document, req Request, categories []string, dedupe *deduper) ([]expense.Record, error) {
	metrics.DocumentsProcessed.WithLabelValues(string(doc.Kind)).Inc()

	var (
		candidates []parser.RawCandidate
		strategy   string
		paidBy     string
		sortByDate bool
	)

	switch doc.Kind {
	case KindCSV:
		var flexible bool
		var err error
		candidates, flexible, err = parser.ExtractCSV(doc.Text)
		if err != nil {
			return nil, err
		}
		paidBy = PaidByCSV
		strategy = "csv-strict"
		if flexible {
			strategy = "csv-flexible"
			sortByDate = true
		}

	default:
		text := normalize.Flatten(doc.Text)
		if parser.IsStatementShaped(text) {
			candidates, strategy = s.cascade.Extract(text)
			paidBy = PaidByCard
			sortByDate = strategy == "aggressive"
		}
		// A dated receipt looks statement-shaped but has no transaction
		// rows; when the cascade comes up empty the single-total path
		// still gets its chance before the batch falls to the placeholder.
		if len(candidates) == 0 {
			candidates = parser.ExtractReceipt(text)
			strategy = "single-total"
			paidBy = PaidByReceipt
			sortByDate = false
		}
	}

	records := s.assemble(ctx, candidates, req, categories, paidBy, dedupe)
	if len(records) > 0 {
		metrics.RecordsExtracted.WithLabelValues(strategy).Add(float64(len(records)))
	}
	if sortByDate {
		sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	}

	s.logger.Debug("document processed",
		slog.String("document", doc.Name),
		slog.String("strategy", strategy),
		slog.Int("candidates", len(candidates)),
		slog.Int("records", len(records)))

	return records, nil
}

// assemble validates, dates, deduplicates, classifies and tax-annotates one
// candidate list.
func (s *Service) assemble(ctx context.Context, candidates []parser.RawCandidate, req Request, categories []string, paidBy string, dedupe *deduper) []expense.Record {
	now := s.now()

	var records []expense.Record
	for _, c := range candidates {
		amount, err := money.ParseAmount(c.AmountText)
		if err != nil {
			metrics.CandidatesDiscarded.WithLabelValues("amount").Inc()
			continue
		}
		amount = money.Round2(amount)
		date := parser.FormatDate(c.DateText, now)

		if !dedupe.Admit(date, c.Description, money.Float(amount)) {
			metrics.CandidatesDiscarded.WithLabelValues("duplicate").Inc()
			continue
		}

		category, review := s.classify(ctx, c, req.Occupation, categories)
		taxPart, net := tax.Annotate(amount, req.Province)

		records = append(records, expense.Record{
			Date:        date,
			PaidBy:      paidBy,
			Description: c.Description,
			GLAccount:   category,
			Amount:      money.Float(amount),
			HST:         money.Float(taxPart),
			Net:         money.Float(net),
			NeedsReview: review,
		})
	}
	return records
}

// classify resolves a candidate's category. Statement-provided categories
// are mapped onto the active set; everything else goes through the
// configured classifier, with the rule classifier as the failure path.
func (s *Service) classify(ctx context.Context, c parser.RawCandidate, occupation string, categories []string) (string, bool) {
	if c.CategoryText != "" {
		mapped := categorize.MapStatementCategory(c.CategoryText, categories)
		return mapped, mapped == categorize.Uncategorized
	}

	res, err := s.classifier.Classify(ctx, c.Description, occupation, categories)
	if err != nil {
		s.logger.Warn("classifier failed, falling back to rules",
			slog.String("description", c.Description), slog.Any("error", err))
		res, _ = s.fallback.Classify(ctx, c.Description, occupation, categories)
	}
	return res.Category, res.Unsure
}

func (s *Service) placeholder() expense.Record {
	return expense.Record{
		Date:        s.now().Format("2006-01-02"),
		PaidBy:      PaidByCard,
		Description: placeholderDescription,
		GLAccount:   expense.Uncategorized,
	}
}
