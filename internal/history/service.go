package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/radard/internal/store"
)

const instrumentationName = "github.com/fyrsmithlabs/radard/internal/history"

const (
	// maxEntries caps the log; the oldest entries are evicted first.
	maxEntries = 100

	// matchPrefixLen is how much of the given suggestion text an existing
	// entry must contain for an outcome update to match it.
	matchPrefixLen = 50

	minResolvedForLearning = 3
	highAcceptancePct      = 80
	lowAcceptancePct       = 30
	recentRejectionCount   = 5
)

// Service provides suggestion history operations.
type Service interface {
	// Record appends a suggestion to the log.
	Record(ctx context.Context, suggestion, category string, outcome Outcome) (*Entry, error)

	// UpdateOutcome sets the outcome on the most recent entry whose text
	// matches the given suggestion. It reports whether a match was found.
	UpdateOutcome(ctx context.Context, suggestion string, outcome Outcome, notes string) (bool, error)

	// Entries returns the log, oldest first.
	Entries(ctx context.Context) ([]Entry, error)

	// AcceptanceRates aggregates accepted/total per category.
	AcceptanceRates(ctx context.Context) (map[string]Rate, error)

	// Learnings renders acceptance-rate extremes and recent rejection notes
	// as advisory text.
	Learnings(ctx context.Context) ([]string, error)
}

type service struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time

	tracer        trace.Tracer
	meter         metric.Meter
	recordCounter metric.Int64Counter
	updateCounter metric.Int64Counter

	mu sync.Mutex
}

// NewService creates a suggestion history service backed by the given store.
func NewService(st store.Store, logger *zap.Logger) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		store:  st,
		logger: logger,
		now:    time.Now,
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}
	s.initMetrics()
	return s, nil
}

func (s *service) initMetrics() {
	var err error

	s.recordCounter, err = s.meter.Int64Counter(
		"radard.history.records_total",
		metric.WithDescription("Total number of suggestions recorded"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		s.logger.Warn("failed to create record counter", zap.Error(err))
	}

	s.updateCounter, err = s.meter.Int64Counter(
		"radard.history.outcome_updates_total",
		metric.WithDescription("Total number of suggestion outcome updates"),
		metric.WithUnit("{update}"),
	)
	if err != nil {
		s.logger.Warn("failed to create update counter", zap.Error(err))
	}
}

// load reads the history document. A missing or unreadable document
// degrades to an empty history rather than failing the operation.
func (s *service) load() []Entry {
	var entries []Entry
	if _, err := s.store.Load(&entries); err != nil {
		s.logger.Warn("failed to load history, starting empty", zap.Error(err))
		return nil
	}
	return entries
}

// Record appends a suggestion, evicting the oldest entries past the cap.
func (s *service) Record(ctx context.Context, suggestion, category string, outcome Outcome) (*Entry, error) {
	ctx, span := s.tracer.Start(ctx, "history.record")
	defer span.End()
	span.SetAttributes(attribute.String("category", category))

	if outcome == "" {
		outcome = OutcomePending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	entry := Entry{
		ID:          uuid.New().String(),
		Suggestion:  suggestion,
		Category:    category,
		SuggestedAt: s.now(),
		Outcome:     outcome,
	}
	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	if err := s.store.Save(entries); err != nil {
		span.RecordError(err)
		s.logger.Warn("failed to persist history", zap.Error(err))
	}

	if s.recordCounter != nil {
		s.recordCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
	}
	s.logger.Debug("recorded suggestion",
		zap.String("id", entry.ID),
		zap.String("category", category))

	return &entry, nil
}

// UpdateOutcome scans newest to oldest for an entry whose suggestion text
// contains the first matchPrefixLen characters of the given text, and
// mutates its outcome in place.
func (s *service) UpdateOutcome(ctx context.Context, suggestion string, outcome Outcome, notes string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "history.update_outcome")
	defer span.End()
	span.SetAttributes(attribute.String("outcome", string(outcome)))

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	needle := suggestion
	if len(needle) > matchPrefixLen {
		needle = needle[:matchPrefixLen]
	}

	matched := false
	for i := len(entries) - 1; i >= 0; i-- {
		if !strings.Contains(entries[i].Suggestion, needle) {
			continue
		}
		at := s.now()
		entries[i].Outcome = outcome
		entries[i].OutcomeAt = &at
		entries[i].OutcomeNotes = notes
		matched = true
		break
	}
	if !matched {
		s.logger.Debug("no matching suggestion for outcome update")
		return false, nil
	}

	if err := s.store.Save(entries); err != nil {
		span.RecordError(err)
		s.logger.Warn("failed to persist history", zap.Error(err))
	}

	if s.updateCounter != nil {
		s.updateCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
	}
	return true, nil
}

func (s *service) Entries(ctx context.Context) ([]Entry, error) {
	_, span := s.tracer.Start(ctx, "history.entries")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// AcceptanceRates aggregates resolved outcomes per category. Categories with
// only pending entries appear with zero totals.
func (s *service) AcceptanceRates(ctx context.Context) (map[string]Rate, error) {
	_, span := s.tracer.Start(ctx, "history.acceptance_rates")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	rates := make(map[string]Rate)
	for _, e := range entries {
		r := rates[e.Category]
		if e.Outcome != OutcomePending {
			r.Total++
			if e.Outcome == OutcomeAccepted {
				r.Accepted++
			}
		}
		rates[e.Category] = r
	}
	for cat, r := range rates {
		if r.Total > 0 {
			r.Percent = int(float64(r.Accepted)/float64(r.Total)*100 + 0.5)
		}
		rates[cat] = r
	}
	return rates, nil
}

// Learnings turns acceptance-rate extremes into textual nudges and echoes
// the notes of the most recent rejections.
func (s *service) Learnings(ctx context.Context) ([]string, error) {
	rates, err := s.AcceptanceRates(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(rates))
	for cat := range rates {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var learnings []string
	for _, cat := range categories {
		r := rates[cat]
		if r.Total < minResolvedForLearning {
			continue
		}
		switch {
		case r.Percent >= highAcceptancePct:
			learnings = append(learnings,
				fmt.Sprintf("✅ %s: %d%% acceptance, keep suggesting", cat, r.Percent))
		case r.Percent <= lowAcceptancePct:
			learnings = append(learnings,
				fmt.Sprintf("⚠️ %s: %d%% acceptance, reduce these suggestions", cat, r.Percent))
		}
	}

	s.mu.Lock()
	entries := s.load()
	s.mu.Unlock()

	var notes []string
	for _, e := range entries {
		if e.Outcome == OutcomeRejected && e.OutcomeNotes != "" {
			notes = append(notes, e.OutcomeNotes)
		}
	}
	if len(notes) > recentRejectionCount {
		notes = notes[len(notes)-recentRejectionCount:]
	}
	if len(notes) > 0 {
		learnings = append(learnings, "📝 Recent rejection notes: "+strings.Join(notes, "; "))
	}
	return learnings, nil
}
