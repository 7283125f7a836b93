package search

import (
	"strings"
	"time"

	"github.com/finresearch/bigdata-agent/internal/bigdata"
)

const dateLayout = "2006-01-02"

// resolveDateRange turns a date_range specifier into an absolute window.
// Named rolling windows resolve against now; an explicit
// "YYYY-MM-DD,YYYY-MM-DD" pair passes through literally, with the end date
// widened to the end of its day so the closed interval includes it.
// An empty specifier means no date filter and returns nil.
func resolveDateRange(spec string, now time.Time) (*bigdata.DateWindow, error) {
	if spec == "" {
		return nil, nil
	}

	switch spec {
	case RANGE_TODAY:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &bigdata.DateWindow{Start: midnight, End: now}, nil
	case RANGE_LAST_WEEK:
		return &bigdata.DateWindow{Start: now.AddDate(0, 0, -7), End: now}, nil
	case RANGE_LAST_30_DAYS:
		return &bigdata.DateWindow{Start: now.AddDate(0, 0, -30), End: now}, nil
	case RANGE_LAST_60_DAYS:
		return &bigdata.DateWindow{Start: now.AddDate(0, 0, -60), End: now}, nil
	case RANGE_LAST_90_DAYS:
		return &bigdata.DateWindow{Start: now.AddDate(0, 0, -90), End: now}, nil
	case RANGE_YEAR_TO_DATE:
		jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &bigdata.DateWindow{Start: jan1, End: now}, nil
	}

	// Explicit "YYYY-MM-DD,YYYY-MM-DD" pair
	startStr, endStr, ok := strings.Cut(spec, ",")
	if !ok {
		return nil, newValidationError("date_range",
			"%q is not a named window (%s) or a \"YYYY-MM-DD,YYYY-MM-DD\" pair",
			spec, strings.Join(DateRanges(), ", "))
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return nil, newValidationError("date_range", "start date %q is not YYYY-MM-DD", startStr)
	}

	end, err := time.Parse(dateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return nil, newValidationError("date_range", "end date %q is not YYYY-MM-DD", endStr)
	}

	if start.After(end) {
		return nil, newValidationError("date_range", "start %s is after end %s", startStr, endStr)
	}

	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &bigdata.DateWindow{Start: start, End: end}, nil
}
