// Package filter applies one logical filter (date range plus equality
// constraints) uniformly across every tabular view the pipeline produces.
// Views opt in by implementing Row; a dimension a view does not carry is
// silently skipped for that view, which is exactly what filtering a rollup
// that already collapsed the dimension means: the per-row split is gone and
// cannot be recovered, so the rollup comes back unfiltered rather than
// erroring.
package filter

import (
	"adlens/domain/core"
)

// Dimension names for equality constraints. Views report values for these
// through FilterKey.
const (
	DimPlatform = "platform"
	DimState    = "state"
	DimCampaign = "campaign"
)

// Row is any view row the engine can test. FilterKey returns the row's
// value for a dimension and whether the view carries that dimension at all.
// A carried dimension with a blank value means the cell was missing: it
// fails any active equality constraint rather than skipping it.
type Row interface {
	FilterKey(dim string) (string, bool)
}

// Dated is implemented by rows that retain a date dimension. A nil Day
// means the row's date was unparsable; such rows never fall inside an
// active date range.
type Dated interface {
	Day() *core.Date
}

// Filter is one logical slice of the dataset. Zero values mean "no
// constraint": nil bounds leave the range open, empty strings apply no
// equality filter. Constraints compose with AND. Both range bounds are
// inclusive.
type Filter struct {
	Start    *core.Date
	End      *core.Date
	Platform string
	State    string
	Campaign string
}

// IsZero reports whether the filter constrains anything.
func (f Filter) IsZero() bool {
	return f.Start == nil && f.End == nil && f.Platform == "" && f.State == "" && f.Campaign == ""
}

// Match tests a single row against every active constraint.
func (f Filter) Match(r Row) bool {
	if f.Start != nil || f.End != nil {
		if dated, ok := r.(Dated); ok {
			day := dated.Day()
			if day == nil {
				return false
			}
			if f.Start != nil && day.Before(*f.Start) {
				return false
			}
			if f.End != nil && day.After(*f.End) {
				return false
			}
		}
	}
	return f.matchDim(r, DimPlatform, f.Platform) &&
		f.matchDim(r, DimState, f.State) &&
		f.matchDim(r, DimCampaign, f.Campaign)
}

func (f Filter) matchDim(r Row, dim, want string) bool {
	if want == "" {
		return true
	}
	v, carried := r.FilterKey(dim)
	if !carried {
		return true
	}
	return v == want
}

// Apply returns the subset of rows matching the filter. The input is never
// mutated; an unconstrained filter returns the input slice unchanged.
func Apply[T Row](rows []T, f Filter) []T {
	if f.IsZero() {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
