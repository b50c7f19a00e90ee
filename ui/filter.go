package ui

import (
	"net/http"
	"strings"

	"adlens/domain/core"
	"adlens/internal/filter"
)

// parseFilter reads the shared filter parameters from a request's query
// string. A bound that fails to parse is ignored rather than rejected, the
// same recovery stance the normalizer takes with bad cells; "All" is
// accepted as an alias for no constraint on the equality dimensions.
func parseFilter(r *http.Request) filter.Filter {
	q := r.URL.Query()
	return filter.Filter{
		Start:    queryDate(q.Get("start")),
		End:      queryDate(q.Get("end")),
		Platform: queryDim(q.Get("platform")),
		State:    queryDim(q.Get("state")),
		Campaign: queryDim(q.Get("campaign")),
	}
}

func queryDate(raw string) *core.Date {
	d, ok := core.ParseDate(raw)
	if !ok {
		return nil
	}
	return &d
}

func queryDim(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return ""
	}
	return raw
}
