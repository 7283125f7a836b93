package search

import (
	"time"

	"github.com/finresearch/bigdata-agent/internal/bigdata"
)

// Result is the normalized output row shared by every content category.
// Scope-specific metadata (speaker, section, filing form type) is populated
// only where the vendor provides it; unknown vendor fields are dropped.
type Result struct {
	DocumentID     string    `json:"document_id"`
	Headline       string    `json:"headline"`
	Snippet        string    `json:"snippet"`
	SourceID       string    `json:"source_id,omitempty"`
	SourceName     string    `json:"source_name,omitempty"`
	PublishedAt    time.Time `json:"published_at,omitzero"`
	EntityIDs      []string  `json:"entity_ids,omitempty"`
	Scope          string    `json:"scope,omitempty"`
	Speaker        string    `json:"speaker,omitempty"`
	Section        string    `json:"section,omitempty"`
	TranscriptType string    `json:"transcript_type,omitempty"`
	FilingType     string    `json:"filing_type,omitempty"`
	FiscalYear     int       `json:"fiscal_year,omitempty"`
	FiscalQuarter  int       `json:"fiscal_quarter,omitempty"`
}

// Entity is a normalized knowledge-graph candidate
type Entity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Ticker      string `json:"ticker,omitempty"`
	Description string `json:"description,omitempty"`
}

// newResult normalizes one vendor document row. A timestamp the vendor sends
// in an unexpected format is dropped rather than errored.
func newResult(doc bigdata.Document) Result {
	r := Result{
		DocumentID:     doc.ID,
		Headline:       doc.Headline,
		Snippet:        doc.Text,
		SourceID:       doc.SourceID,
		SourceName:     doc.SourceName,
		EntityIDs:      doc.EntityIDs,
		Scope:          doc.Scope,
		Speaker:        doc.Speaker,
		Section:        doc.Section,
		TranscriptType: doc.TranscriptType,
		FilingType:     doc.FilingType,
		FiscalYear:     doc.FiscalYear,
		FiscalQuarter:  doc.FiscalQuarter,
	}

	if doc.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, doc.Timestamp); err == nil {
			r.PublishedAt = ts
		}
	}

	return r
}

// newEntity normalizes one knowledge-graph candidate row
func newEntity(m bigdata.EntityMatch) Entity {
	return Entity{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Ticker:      m.Ticker,
		Description: m.Description,
	}
}
