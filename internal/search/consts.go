package search

const (
	// Named rolling date windows, resolved against current time at request time
	RANGE_TODAY        = "today"
	RANGE_LAST_WEEK    = "last_week"
	RANGE_LAST_30_DAYS = "last_30_days"
	RANGE_LAST_60_DAYS = "last_60_days"
	RANGE_LAST_90_DAYS = "last_90_days"
	RANGE_YEAR_TO_DATE = "year_to_date"

	// Transcript types
	TRANSCRIPT_TYPE_EARNINGS_CALL    = "EARNINGS_CALL"
	TRANSCRIPT_TYPE_CONFERENCE_CALL  = "CONFERENCE_CALL"
	TRANSCRIPT_TYPE_INVESTOR_MEETING = "INVESTOR_MEETING"

	// Transcript section labels
	SECTION_QA                    = "QA"
	SECTION_MANAGEMENT_DISCUSSION = "MANAGEMENT_DISCUSSION"

	// SEC filing form types
	FILING_TYPE_SEC_10_K     = "SEC_10_K"
	FILING_TYPE_SEC_10_Q     = "SEC_10_Q"
	FILING_TYPE_SEC_8_K      = "SEC_8_K"
	FILING_TYPE_SEC_DEF_14A  = "SEC_DEF_14A"
	FILING_TYPE_SEC_DEF_10_Q = "SEC_DEF_10Q"
	FILING_TYPE_SEC_DEF_10_K = "SEC_DEF_10K"
	FILING_TYPE_SEC_DEF_8_K  = "SEC_DEF_8K"

	// Knowledge-graph lookup categories
	SEARCH_TYPE_COMPANIES = "companies"
	SEARCH_TYPE_SOURCES   = "sources"

	// Result count bounds applied when a request leaves max_results unset or
	// asks for more than the vendor will page in one call
	DEFAULT_MAX_RESULTS = 10
	MAX_RESULTS_LIMIT   = 100

	// Prefix for watchlist references inside entity_ids
	WATCHLIST_PREFIX = "watchlist:"
)

var validTranscriptTypes = map[string]bool{
	TRANSCRIPT_TYPE_EARNINGS_CALL:    true,
	TRANSCRIPT_TYPE_CONFERENCE_CALL:  true,
	TRANSCRIPT_TYPE_INVESTOR_MEETING: true,
}

var validSections = map[string]bool{
	SECTION_QA:                    true,
	SECTION_MANAGEMENT_DISCUSSION: true,
}

var validFilingTypes = map[string]bool{
	FILING_TYPE_SEC_10_K:     true,
	FILING_TYPE_SEC_10_Q:     true,
	FILING_TYPE_SEC_8_K:      true,
	FILING_TYPE_SEC_DEF_14A:  true,
	FILING_TYPE_SEC_DEF_10_Q: true,
	FILING_TYPE_SEC_DEF_10_K: true,
	FILING_TYPE_SEC_DEF_8_K:  true,
}

var validSearchTypes = map[string]bool{
	SEARCH_TYPE_COMPANIES: true,
	SEARCH_TYPE_SOURCES:   true,
}

// TranscriptTypes returns the recognized transcript type values, for tool
// schema enums
func TranscriptTypes() []string {
	return []string{
		TRANSCRIPT_TYPE_EARNINGS_CALL,
		TRANSCRIPT_TYPE_CONFERENCE_CALL,
		TRANSCRIPT_TYPE_INVESTOR_MEETING,
	}
}

// Sections returns the recognized transcript section labels
func Sections() []string {
	return []string{SECTION_QA, SECTION_MANAGEMENT_DISCUSSION}
}

// FilingTypes returns the recognized SEC filing form types
func FilingTypes() []string {
	return []string{
		FILING_TYPE_SEC_10_K,
		FILING_TYPE_SEC_10_Q,
		FILING_TYPE_SEC_8_K,
		FILING_TYPE_SEC_DEF_14A,
		FILING_TYPE_SEC_DEF_10_Q,
		FILING_TYPE_SEC_DEF_10_K,
		FILING_TYPE_SEC_DEF_8_K,
	}
}

// SearchTypes returns the recognized knowledge-graph lookup categories
func SearchTypes() []string {
	return []string{SEARCH_TYPE_COMPANIES, SEARCH_TYPE_SOURCES}
}

// DateRanges returns the recognized named rolling windows
func DateRanges() []string {
	return []string{
		RANGE_TODAY,
		RANGE_LAST_WEEK,
		RANGE_LAST_30_DAYS,
		RANGE_LAST_60_DAYS,
		RANGE_LAST_90_DAYS,
		RANGE_YEAR_TO_DATE,
	}
}
