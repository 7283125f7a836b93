package search

import "strings"

// Request structs are the typed equivalents of the tool invocation schemas.
// Every request validates at construction time, before any network call.

// NewsRequest searches premium news content
type NewsRequest struct {
	Queries    []string `json:"queries"`
	EntityIDs  []string `json:"entity_ids,omitempty"`
	DateRange  string   `json:"date_range,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

// Validate checks required fields and enum values
func (r NewsRequest) Validate() error {
	return validateCommon(r.Queries, r.MaxResults)
}

// TranscriptRequest searches corporate call transcripts
type TranscriptRequest struct {
	Queries         []string `json:"queries"`
	EntityIDs       []string `json:"entity_ids,omitempty"`
	DateRange       string   `json:"date_range,omitempty"`
	TranscriptTypes []string `json:"transcript_types,omitempty"`
	Sections        []string `json:"section_metadata,omitempty"`
	FiscalYear      int      `json:"fiscal_year,omitempty"`
	FiscalQuarter   int      `json:"fiscal_quarter,omitempty"`
	MaxResults      int      `json:"max_results,omitempty"`
}

// Validate checks required fields and enum values
func (r TranscriptRequest) Validate() error {
	if err := validateCommon(r.Queries, r.MaxResults); err != nil {
		return err
	}
	for _, tt := range r.TranscriptTypes {
		if !validTranscriptTypes[tt] {
			return newValidationError("transcript_types",
				"unrecognized value %q (expected one of %s)", tt, strings.Join(TranscriptTypes(), ", "))
		}
	}
	for _, s := range r.Sections {
		if !validSections[s] {
			return newValidationError("section_metadata",
				"unrecognized value %q (expected one of %s)", s, strings.Join(Sections(), ", "))
		}
	}
	return validateFiscalPeriod(r.FiscalYear, r.FiscalQuarter)
}

// FilingRequest searches SEC filings
type FilingRequest struct {
	Queries            []string `json:"queries"`
	EntityIDs          []string `json:"entity_ids,omitempty"`
	DateRange          string   `json:"date_range,omitempty"`
	FilingTypes        []string `json:"filing_types,omitempty"`
	FiscalYear         int      `json:"fiscal_year,omitempty"`
	FiscalQuarter      int      `json:"fiscal_quarter,omitempty"`
	ReportingEntityIDs []string `json:"reporting_entity_ids,omitempty"`
	MaxResults         int      `json:"max_results,omitempty"`
}

// Validate checks required fields and enum values
func (r FilingRequest) Validate() error {
	if err := validateCommon(r.Queries, r.MaxResults); err != nil {
		return err
	}
	for _, ft := range r.FilingTypes {
		if !validFilingTypes[ft] {
			return newValidationError("filing_types",
				"unrecognized value %q (expected one of %s)", ft, strings.Join(FilingTypes(), ", "))
		}
	}
	return validateFiscalPeriod(r.FiscalYear, r.FiscalQuarter)
}

// UniversalRequest searches across every content category at once
type UniversalRequest struct {
	Queries    []string `json:"queries"`
	EntityIDs  []string `json:"entity_ids,omitempty"`
	DateRange  string   `json:"date_range,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

// Validate checks required fields and enum values
func (r UniversalRequest) Validate() error {
	return validateCommon(r.Queries, r.MaxResults)
}

// KnowledgeGraphRequest resolves a human-readable name into candidate
// entities and their canonical ids
type KnowledgeGraphRequest struct {
	SearchTerm string `json:"search_term"`
	SearchType string `json:"search_type"`
	MaxResults int    `json:"max_results,omitempty"`
}

// Validate checks required fields and enum values
func (r KnowledgeGraphRequest) Validate() error {
	if strings.TrimSpace(r.SearchTerm) == "" {
		return newValidationError("search_term", "must not be empty")
	}
	if !validSearchTypes[r.SearchType] {
		return newValidationError("search_type",
			"unrecognized value %q (expected one of %s)", r.SearchType, strings.Join(SearchTypes(), ", "))
	}
	if r.MaxResults < 0 {
		return newValidationError("max_results", "must not be negative")
	}
	return nil
}

func validateCommon(queries []string, maxResults int) error {
	if len(queries) == 0 {
		return newValidationError("queries", "at least one query string is required")
	}
	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			return newValidationError("queries", "query strings must not be empty")
		}
	}
	if maxResults < 0 {
		return newValidationError("max_results", "must not be negative")
	}
	return nil
}

func validateFiscalPeriod(year, quarter int) error {
	if year < 0 || (year > 0 && year < 1900) {
		return newValidationError("fiscal_year", "%d is not a plausible year", year)
	}
	if quarter < 0 || quarter > 4 {
		return newValidationError("fiscal_quarter", "must be between 1 and 4")
	}
	return nil
}

// clampMaxResults applies the default and upper bound for result counts
func clampMaxResults(n int) int {
	if n <= 0 {
		return DEFAULT_MAX_RESULTS
	}
	if n > MAX_RESULTS_LIMIT {
		return MAX_RESULTS_LIMIT
	}
	return n
}
