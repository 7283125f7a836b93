package search

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/finresearch/bigdata-agent/internal/bigdata"
)

// Service executes validated search requests against the vendor service.
// One adapter operation exists per content category; each validates its
// request, resolves date ranges and watchlist references, builds the vendor
// filter object, runs exactly one vendor call through the shared session,
// and normalizes the response rows.
type Service struct {
	sessions   *bigdata.Manager
	watchlists *Watchlists
	now        func() time.Time
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithWatchlists enables "watchlist:<name>" references in entity_ids
func WithWatchlists(w *Watchlists) ServiceOption {
	return func(s *Service) {
		s.watchlists = w
	}
}

// NewService creates a search service backed by the given session manager
func NewService(sessions *bigdata.Manager, opts ...ServiceOption) *Service {
	s := &Service{
		sessions: sessions,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SearchNews searches premium news content
func (s *Service) SearchNews(ctx context.Context, req NewsRequest) ([]Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.buildQuery(bigdata.ScopeNews, req.Queries, req.EntityIDs, req.DateRange, req.MaxResults)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, q)
}

// SearchTranscripts searches corporate call transcripts
func (s *Service) SearchTranscripts(ctx context.Context, req TranscriptRequest) ([]Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.buildQuery(bigdata.ScopeTranscripts, req.Queries, req.EntityIDs, req.DateRange, req.MaxResults)
	if err != nil {
		return nil, err
	}
	q.TranscriptTypes = req.TranscriptTypes
	q.Sections = req.Sections
	q.FiscalYear = req.FiscalYear
	q.FiscalQuarter = req.FiscalQuarter

	return s.run(ctx, q)
}

// SearchFilings searches SEC filings
func (s *Service) SearchFilings(ctx context.Context, req FilingRequest) ([]Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.buildQuery(bigdata.ScopeFilings, req.Queries, req.EntityIDs, req.DateRange, req.MaxResults)
	if err != nil {
		return nil, err
	}
	q.FilingTypes = req.FilingTypes
	q.FiscalYear = req.FiscalYear
	q.FiscalQuarter = req.FiscalQuarter
	q.ReportingEntityIDs = req.ReportingEntityIDs

	return s.run(ctx, q)
}

// SearchAll searches across every content category at once
func (s *Service) SearchAll(ctx context.Context, req UniversalRequest) ([]Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.buildQuery(bigdata.ScopeAll, req.Queries, req.EntityIDs, req.DateRange, req.MaxResults)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, q)
}

// LookupEntities resolves a search term into ranked knowledge-graph
// candidates with canonical entity ids
func (s *Service) LookupEntities(ctx context.Context, req KnowledgeGraphRequest) ([]Entity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	client, err := s.sessions.Client(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := client.LookupEntities(ctx, req.SearchTerm, req.SearchType, clampMaxResults(req.MaxResults))
	if err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(matches))
	for _, m := range matches {
		entities = append(entities, newEntity(m))
	}

	log.Printf("[SEARCH]: Entity lookup %q (%s) returned %d candidates", req.SearchTerm, req.SearchType, len(entities))
	return entities, nil
}

// buildQuery assembles the vendor filter object shared by every document
// scope; validation has already passed by the time this runs
func (s *Service) buildQuery(scope bigdata.DocumentScope, queries, entityIDs []string, dateRange string, maxResults int) (bigdata.Query, error) {
	window, err := resolveDateRange(dateRange, s.now())
	if err != nil {
		return bigdata.Query{}, err
	}

	resolved, err := s.resolveEntityIDs(entityIDs)
	if err != nil {
		return bigdata.Query{}, err
	}

	return bigdata.Query{
		Scope:     scope,
		Text:      queries,
		EntityIDs: resolved,
		Date:      window,
		Limit:     clampMaxResults(maxResults),
	}, nil
}

func (s *Service) resolveEntityIDs(ids []string) ([]string, error) {
	if s.watchlists != nil {
		return s.watchlists.resolveEntityIDs(ids)
	}

	for _, id := range ids {
		if strings.HasPrefix(id, WATCHLIST_PREFIX) {
			return nil, newValidationError("entity_ids", "no watchlists configured, cannot resolve %q", id)
		}
	}
	return ids, nil
}

// run executes one vendor call through the shared session and normalizes
// the result rows. Zero matches is an empty slice with a nil error.
func (s *Service) run(ctx context.Context, q bigdata.Query) ([]Result, error) {
	client, err := s.sessions.Client(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := client.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(docs))
	for _, doc := range docs {
		results = append(results, newResult(doc))
	}

	log.Printf("[SEARCH]: %s search for %d queries returned %d results", q.Scope, len(q.Text), len(results))
	return results, nil
}
