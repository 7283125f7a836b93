package bigdata

// Document is one row of a vendor search response. Only the fields this
// system consumes are decoded; anything else the vendor sends is dropped.
type Document struct {
	ID             string   `json:"id"`
	Headline       string   `json:"headline"`
	Text           string   `json:"text"`
	SourceID       string   `json:"source_id"`
	SourceName     string   `json:"source_name"`
	Timestamp      string   `json:"timestamp"`
	EntityIDs      []string `json:"entity_ids"`
	Scope          string   `json:"document_scope"`
	Speaker        string   `json:"speaker"`
	Section        string   `json:"section"`
	TranscriptType string   `json:"transcript_type"`
	FilingType     string   `json:"filing_type"`
	FiscalYear     int      `json:"fiscal_year"`
	FiscalQuarter  int      `json:"fiscal_quarter"`
}

// EntityMatch is one knowledge-graph candidate returned for a lookup term
type EntityMatch struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Ticker      string `json:"ticker"`
	Description string `json:"description"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type searchResponse struct {
	Documents []Document `json:"documents"`
}

type entityLookupRequest struct {
	Term     string `json:"term"`
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

type entityLookupResponse struct {
	Entities []EntityMatch `json:"entities"`
}

type errorResponse struct {
	Message string `json:"message"`
}
