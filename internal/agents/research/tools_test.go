package research

import (
	"context"
	"errors"
	"testing"

	"github.com/finresearch/bigdata-agent/internal/bigdata"
	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/finresearch/bigdata-agent/pkg/utils"
	"github.com/nlpodyssey/openai-agents-go/agents"
)

// mockVendor implements bigdata.SearchClient for tool handler tests
type mockVendor struct {
	searchCalls int
	lookupCalls int
	docs        []bigdata.Document
	entities    []bigdata.EntityMatch
}

func (m *mockVendor) Search(_ context.Context, q bigdata.Query) ([]bigdata.Document, error) {
	m.searchCalls++
	return m.docs, nil
}

func (m *mockVendor) LookupEntities(_ context.Context, term, category string, limit int) ([]bigdata.EntityMatch, error) {
	m.lookupCalls++
	return m.entities, nil
}

func newTestAgent(t *testing.T, mock *mockVendor) *ResearchAgent {
	t.Helper()

	manager := bigdata.NewManagerWithDial(func(ctx context.Context) (bigdata.SearchClient, error) {
		return mock, nil
	})
	svc := search.NewService(manager)

	cfg := utils.NewConfig(map[string]string{"MODEL": "gpt-test"})
	ra, err := NewResearchAgent(svc, cfg)
	if err != nil {
		t.Fatalf("NewResearchAgent() unexpected error: %v", err)
	}
	return ra
}

func TestRegisterTools(t *testing.T) {
	ra := newTestAgent(t, &mockVendor{})

	want := map[string]bool{
		TOOL_NEWS_SEARCH:            false,
		TOOL_TRANSCRIPT_SEARCH:      false,
		TOOL_FILING_SEARCH:          false,
		TOOL_UNIVERSAL_SEARCH:       false,
		TOOL_KNOWLEDGE_GRAPH_SEARCH: false,
	}

	for _, tool := range ra.agent.Tools {
		ft, ok := tool.(agents.FunctionTool)
		if !ok {
			t.Fatalf("unexpected tool type %T", tool)
		}
		if _, expected := want[ft.Name]; !expected {
			t.Errorf("unexpected tool %q registered", ft.Name)
			continue
		}
		want[ft.Name] = true
	}

	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func TestHandleNewsSearch(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		wantError bool
	}{
		{
			name:      "valid minimal arguments",
			arguments: `{"queries": ["micron memory demand"]}`,
			wantError: false,
		},
		{
			name: "valid arguments with all filters",
			arguments: `{
				"queries": ["micron guidance", "hbm supply"],
				"entity_ids": ["228D42"],
				"date_range": "last_30_days",
				"max_results": 5
			}`,
			wantError: false,
		},
		{
			name:      "empty query list",
			arguments: `{"queries": []}`,
			wantError: true,
		},
		{
			name:      "invalid JSON",
			arguments: `{"queries": [}`,
			wantError: true,
		},
		{
			name:      "invalid date range",
			arguments: `{"queries": ["q"], "date_range": "last_eon"}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockVendor{}
			ra := newTestAgent(t, mock)

			result, err := ra.handleNewsSearch(context.Background(), tt.arguments)

			if tt.wantError && err == nil {
				t.Errorf("handleNewsSearch() expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("handleNewsSearch() unexpected error: %v", err)
			}
			if tt.wantError && mock.searchCalls != 0 {
				t.Errorf("handleNewsSearch() reached the vendor on invalid input")
			}
			if !tt.wantError && result["result_count"] == nil {
				t.Errorf("handleNewsSearch() result missing result_count")
			}
		})
	}
}

func TestHandleTranscriptSearch(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		wantError bool
	}{
		{
			name: "valid arguments with section filter",
			arguments: `{
				"queries": ["forward guidance"],
				"transcript_types": ["EARNINGS_CALL"],
				"section_metadata": ["QA"],
				"fiscal_year": 2024,
				"fiscal_quarter": 1
			}`,
			wantError: false,
		},
		{
			name:      "unrecognized transcript type",
			arguments: `{"queries": ["guidance"], "transcript_types": ["SHAREHOLDER_LETTER"]}`,
			wantError: true,
		},
		{
			name:      "unrecognized section",
			arguments: `{"queries": ["guidance"], "section_metadata": ["FOOTNOTES"]}`,
			wantError: true,
		},
		{
			name:      "fiscal quarter out of range",
			arguments: `{"queries": ["guidance"], "fiscal_quarter": 5}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockVendor{}
			ra := newTestAgent(t, mock)

			_, err := ra.handleTranscriptSearch(context.Background(), tt.arguments)

			if tt.wantError && err == nil {
				t.Errorf("handleTranscriptSearch() expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("handleTranscriptSearch() unexpected error: %v", err)
			}
			if tt.wantError && mock.searchCalls != 0 {
				t.Errorf("handleTranscriptSearch() reached the vendor on invalid input")
			}
		})
	}
}

func TestHandleFilingSearch(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		wantError bool
	}{
		{
			name: "valid arguments",
			arguments: `{
				"queries": ["risk factors"],
				"filing_types": ["SEC_10_K", "SEC_10_Q"],
				"fiscal_year": 2024
			}`,
			wantError: false,
		},
		{
			name:      "unrecognized filing type",
			arguments: `{"queries": ["risk factors"], "filing_types": ["SEC_13_F"]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockVendor{}
			ra := newTestAgent(t, mock)

			_, err := ra.handleFilingSearch(context.Background(), tt.arguments)

			if tt.wantError && err == nil {
				t.Errorf("handleFilingSearch() expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("handleFilingSearch() unexpected error: %v", err)
			}
			if tt.wantError && mock.searchCalls != 0 {
				t.Errorf("handleFilingSearch() reached the vendor on invalid input")
			}
		})
	}
}

func TestHandleKnowledgeGraphSearch(t *testing.T) {
	mock := &mockVendor{
		entities: []bigdata.EntityMatch{
			{ID: "DD3BB1", Name: "Tesla Inc.", Ticker: "TSLA"},
		},
	}
	ra := newTestAgent(t, mock)

	result, err := ra.handleKnowledgeGraphSearch(context.Background(),
		`{"search_term": "Tesla", "search_type": "companies", "max_results": 5}`)
	if err != nil {
		t.Fatalf("handleKnowledgeGraphSearch() unexpected error: %v", err)
	}

	if result["result_count"] != 1 {
		t.Errorf("handleKnowledgeGraphSearch() result_count = %v, want 1", result["result_count"])
	}

	entities, ok := result["entities"].([]search.Entity)
	if !ok || len(entities) != 1 || entities[0].ID != "DD3BB1" {
		t.Errorf("handleKnowledgeGraphSearch() entities = %v, want the seeded Tesla candidate", result["entities"])
	}
}

func TestHandleKnowledgeGraphSearch_InvalidCategory(t *testing.T) {
	mock := &mockVendor{}
	ra := newTestAgent(t, mock)

	_, err := ra.handleKnowledgeGraphSearch(context.Background(),
		`{"search_term": "Tesla", "search_type": "people"}`)
	if err == nil {
		t.Fatal("handleKnowledgeGraphSearch() expected error for invalid search_type")
	}

	var vErr *search.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("handleKnowledgeGraphSearch() error = %T, want *search.ValidationError", err)
	}
	if mock.lookupCalls != 0 {
		t.Errorf("handleKnowledgeGraphSearch() reached the vendor on invalid input")
	}
}

func TestToolSearchesShareOneSession(t *testing.T) {
	authCalls := 0
	mock := &mockVendor{}
	manager := bigdata.NewManagerWithDial(func(ctx context.Context) (bigdata.SearchClient, error) {
		authCalls++
		return mock, nil
	})
	svc := search.NewService(manager)

	cfg := utils.NewConfig(map[string]string{"MODEL": "gpt-test"})
	ra, err := NewResearchAgent(svc, cfg)
	if err != nil {
		t.Fatalf("NewResearchAgent() unexpected error: %v", err)
	}

	ctx := context.Background()
	if _, err := ra.handleNewsSearch(ctx, `{"queries": ["first"]}`); err != nil {
		t.Fatalf("handleNewsSearch() unexpected error: %v", err)
	}
	if _, err := ra.handleUniversalSearch(ctx, `{"queries": ["second"]}`); err != nil {
		t.Fatalf("handleUniversalSearch() unexpected error: %v", err)
	}

	if authCalls != 1 {
		t.Errorf("tool calls created %d sessions, want 1", authCalls)
	}
	if mock.searchCalls != 2 {
		t.Errorf("vendor search called %d times, want 2", mock.searchCalls)
	}
}
