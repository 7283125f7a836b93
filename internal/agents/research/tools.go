package research

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/openai/openai-go/v2/packages/param"
)

// registerTools registers one tool per content category
func (ra *ResearchAgent) registerTools() {
	newsTool := agents.FunctionTool{
		Name:        TOOL_NEWS_SEARCH,
		Description: "Search premium news content from global publishers",
		ParamsJSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"queries":     queriesSchema(),
				"entity_ids":  entityIDsSchema(),
				"date_range":  dateRangeSchema(),
				"max_results": maxResultsSchema(),
			},
			"additionalProperties": false,
			"required":             []string{"queries", "entity_ids", "date_range", "max_results"},
		},
		StrictJSONSchema: param.NewOpt(true),
		OnInvokeTool: func(ctx context.Context, arguments string) (any, error) {
			return ra.handleNewsSearch(ctx, arguments)
		},
		IsEnabled: agents.FunctionToolEnabled(),
	}

	transcriptTool := agents.FunctionTool{
		Name:        TOOL_TRANSCRIPT_SEARCH,
		Description: "Search corporate earnings calls, conference calls, and investor meetings with section filtering",
		ParamsJSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"queries":    queriesSchema(),
				"entity_ids": entityIDsSchema(),
				"date_range": dateRangeSchema(),
				"transcript_types": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string", "enum": search.TranscriptTypes()},
					"description": "Transcript types to include (optional, empty means all)",
				},
				"section_metadata": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string", "enum": search.Sections()},
					"description": "Transcript sections to include, e.g. QA (optional, empty means all)",
				},
				"fiscal_year": map[string]any{
					"type":        "integer",
					"description": "Fiscal year to filter by (optional, 0 means any)",
				},
				"fiscal_quarter": map[string]any{
					"type":        "integer",
					"description": "Fiscal quarter 1-4 to filter by (optional, 0 means any)",
				},
				"max_results": maxResultsSchema(),
			},
			"additionalProperties": false,
			"required": []string{
				"queries", "entity_ids", "date_range", "transcript_types",
				"section_metadata", "fiscal_year", "fiscal_quarter", "max_results",
			},
		},
		StrictJSONSchema: param.NewOpt(true),
		OnInvokeTool: func(ctx context.Context, arguments string) (any, error) {
			return ra.handleTranscriptSearch(ctx, arguments)
		},
		IsEnabled: agents.FunctionToolEnabled(),
	}

	filingTool := agents.FunctionTool{
		Name:        TOOL_FILING_SEARCH,
		Description: "Search SEC filings (10-K, 10-Q, 8-K, proxy statements) with fiscal period filtering",
		ParamsJSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"queries":    queriesSchema(),
				"entity_ids": entityIDsSchema(),
				"date_range": dateRangeSchema(),
				"filing_types": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string", "enum": search.FilingTypes()},
					"description": "SEC filing form types to include (optional, empty means all)",
				},
				"fiscal_year": map[string]any{
					"type":        "integer",
					"description": "Fiscal year to filter by (optional, 0 means any)",
				},
				"fiscal_quarter": map[string]any{
					"type":        "integer",
					"description": "Fiscal quarter 1-4 to filter by (optional, 0 means any)",
				},
				"reporting_entity_ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Restrict to filings reported by these entity ids (optional)",
				},
				"max_results": maxResultsSchema(),
			},
			"additionalProperties": false,
			"required": []string{
				"queries", "entity_ids", "date_range", "filing_types",
				"fiscal_year", "fiscal_quarter", "reporting_entity_ids", "max_results",
			},
		},
		StrictJSONSchema: param.NewOpt(true),
		OnInvokeTool: func(ctx context.Context, arguments string) (any, error) {
			return ra.handleFilingSearch(ctx, arguments)
		},
		IsEnabled: agents.FunctionToolEnabled(),
	}

	universalTool := agents.FunctionTool{
		Name:        TOOL_UNIVERSAL_SEARCH,
		Description: "Search across news, transcripts, and filings at once",
		ParamsJSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"queries":     queriesSchema(),
				"entity_ids":  entityIDsSchema(),
				"date_range":  dateRangeSchema(),
				"max_results": maxResultsSchema(),
			},
			"additionalProperties": false,
			"required":             []string{"queries", "entity_ids", "date_range", "max_results"},
		},
		StrictJSONSchema: param.NewOpt(true),
		OnInvokeTool: func(ctx context.Context, arguments string) (any, error) {
			return ra.handleUniversalSearch(ctx, arguments)
		},
		IsEnabled: agents.FunctionToolEnabled(),
	}

	knowledgeGraphTool := agents.FunctionTool{
		Name:        TOOL_KNOWLEDGE_GRAPH_SEARCH,
		Description: "Resolve a company or source name into canonical entity ids for use in the other search tools",
		ParamsJSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"search_term": map[string]any{
					"type":        "string",
					"description": "Company or source name to look up, e.g. 'Tesla'",
				},
				"search_type": map[string]any{
					"type":        "string",
					"description": "Entity category to search",
					"enum":        search.SearchTypes(),
				},
				"max_results": maxResultsSchema(),
			},
			"additionalProperties": false,
			"required":             []string{"search_term", "search_type", "max_results"},
		},
		StrictJSONSchema: param.NewOpt(true),
		OnInvokeTool: func(ctx context.Context, arguments string) (any, error) {
			return ra.handleKnowledgeGraphSearch(ctx, arguments)
		},
		IsEnabled: agents.FunctionToolEnabled(),
	}

	// Register all tools with the agent
	ra.agent.Tools = []agents.Tool{
		newsTool,
		transcriptTool,
		filingTool,
		universalTool,
		knowledgeGraphTool,
	}
}

// Shared schema fragments for the fields every search tool accepts

func queriesSchema() map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Specific, targeted search queries (at least one required)",
	}
}

func entityIDsSchema() map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Entity ids from knowledge_graph_search, or 'watchlist:<name>' references (optional)",
	}
}

func dateRangeSchema() map[string]any {
	return map[string]any{
		"type": "string",
		"description": "Named rolling window (today, last_week, last_30_days, last_60_days, " +
			"last_90_days, year_to_date) or an explicit 'YYYY-MM-DD,YYYY-MM-DD' pair (optional, empty means no date filter)",
	}
}

func maxResultsSchema() map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Maximum number of results to return (0 uses the default of 10)",
	}
}

// handleNewsSearch executes a news search tool call
func (ra *ResearchAgent) handleNewsSearch(ctx context.Context, arguments string) (map[string]any, error) {
	var req search.NewsRequest
	if err := json.Unmarshal([]byte(arguments), &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	results, err := ra.search.SearchNews(ctx, req)
	if err != nil {
		return nil, err
	}

	return searchToolResult(req.Queries, results), nil
}

// handleTranscriptSearch executes a transcript search tool call
func (ra *ResearchAgent) handleTranscriptSearch(ctx context.Context, arguments string) (map[string]any, error) {
	var req search.TranscriptRequest
	if err := json.Unmarshal([]byte(arguments), &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	results, err := ra.search.SearchTranscripts(ctx, req)
	if err != nil {
		return nil, err
	}

	return searchToolResult(req.Queries, results), nil
}

// handleFilingSearch executes a filing search tool call
func (ra *ResearchAgent) handleFilingSearch(ctx context.Context, arguments string) (map[string]any, error) {
	var req search.FilingRequest
	if err := json.Unmarshal([]byte(arguments), &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	results, err := ra.search.SearchFilings(ctx, req)
	if err != nil {
		return nil, err
	}

	return searchToolResult(req.Queries, results), nil
}

// handleUniversalSearch executes a universal search tool call
func (ra *ResearchAgent) handleUniversalSearch(ctx context.Context, arguments string) (map[string]any, error) {
	var req search.UniversalRequest
	if err := json.Unmarshal([]byte(arguments), &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	results, err := ra.search.SearchAll(ctx, req)
	if err != nil {
		return nil, err
	}

	return searchToolResult(req.Queries, results), nil
}

// handleKnowledgeGraphSearch executes an entity lookup tool call
func (ra *ResearchAgent) handleKnowledgeGraphSearch(ctx context.Context, arguments string) (map[string]any, error) {
	var req search.KnowledgeGraphRequest
	if err := json.Unmarshal([]byte(arguments), &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	entities, err := ra.search.LookupEntities(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"search_term":  req.SearchTerm,
		"search_type":  req.SearchType,
		"result_count": len(entities),
		"entities":     entities,
	}, nil
}

func searchToolResult(queries []string, results []search.Result) map[string]any {
	return map[string]any{
		"queries":      queries,
		"result_count": len(results),
		"results":      results,
	}
}
