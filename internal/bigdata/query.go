package bigdata

import "time"

// DocumentScope selects which vendor content set a query runs against
type DocumentScope string

const (
	ScopeNews        DocumentScope = "news"
	ScopeTranscripts DocumentScope = "transcripts"
	ScopeFilings     DocumentScope = "filings"
	ScopeAll         DocumentScope = "all"
)

// DateWindow is an absolute closed interval passed to the vendor service
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Query is the filter object for a single vendor search call. Fields that
// don't apply to the selected scope are left zero and omitted from the wire
// payload.
type Query struct {
	Scope              DocumentScope `json:"scope"`
	Text               []string      `json:"text"`
	EntityIDs          []string      `json:"entity_ids,omitempty"`
	Date               *DateWindow   `json:"date,omitempty"`
	TranscriptTypes    []string      `json:"transcript_types,omitempty"`
	Sections           []string      `json:"sections,omitempty"`
	FilingTypes        []string      `json:"filing_types,omitempty"`
	FiscalYear         int           `json:"fiscal_year,omitempty"`
	FiscalQuarter      int           `json:"fiscal_quarter,omitempty"`
	ReportingEntityIDs []string      `json:"reporting_entity_ids,omitempty"`
	Limit              int           `json:"limit"`
}
