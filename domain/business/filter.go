package business

import (
	"adlens/domain/core"
)

// Day returns the record's date, nil when the source date was unparsable.
func (r Record) Day() *core.Date {
	return r.Date
}

// FilterKey: the business feed carries no platform, state or campaign
// dimension, only its date axis.
func (r Record) FilterKey(string) (string, bool) {
	return "", false
}

// Day returns the merged row's date.
func (m Merged) Day() *core.Date {
	d := m.Date
	return &d
}

// FilterKey: the merged view joins business days to cross-platform totals;
// every non-date dimension was collapsed before the join.
func (m Merged) FilterKey(string) (string, bool) {
	return "", false
}
