package marketing

import (
	"adlens/domain/core"
)

// The FilterKey/Day methods let the filter engine treat every marketing
// view uniformly. Each view reports only the dimensions its shape still
// carries; a rollup that collapsed a dimension reports it as not carried,
// so filtering on it is a no-op by contract.

// Day returns the record's date, nil when the source date was unparsable.
func (r Record) Day() *core.Date {
	return r.Date
}

// FilterKey reports the record's value for a filter dimension. The
// row-level table carries platform always, and tactic-independent
// dimensions (state, campaign) only when the source file had the column.
func (r Record) FilterKey(dim string) (string, bool) {
	switch dim {
	case "platform":
		return string(r.Platform), true
	case "state":
		if r.State == nil {
			return "", false
		}
		return *r.State, true
	case "campaign":
		if r.Campaign == nil {
			return "", false
		}
		return *r.Campaign, true
	default:
		return "", false
	}
}

// Day returns the rollup row's date.
func (r DayPlatformRow) Day() *core.Date {
	d := r.Date
	return &d
}

// FilterKey: the (date, platform) rollup retains only the platform
// dimension.
func (r DayPlatformRow) FilterKey(dim string) (string, bool) {
	if dim == "platform" {
		return string(r.Platform), true
	}
	return "", false
}

// FilterKey: the platform summary retains only the platform dimension; its
// date axis is collapsed, so date ranges do not apply.
func (r PlatformRow) FilterKey(dim string) (string, bool) {
	if dim == "platform" {
		return string(r.Platform), true
	}
	return "", false
}

// FilterKey: the campaign rollup retains platform and campaign.
func (r CampaignRow) FilterKey(dim string) (string, bool) {
	switch dim {
	case "platform":
		return string(r.Platform), true
	case "campaign":
		return r.Campaign, true
	default:
		return "", false
	}
}

// Day returns the total row's date.
func (r DailyTotal) Day() *core.Date {
	d := r.Date
	return &d
}

// FilterKey: cross-platform totals collapsed every non-date dimension, so
// only the date range ever constrains this view.
func (r DailyTotal) FilterKey(string) (string, bool) {
	return "", false
}
