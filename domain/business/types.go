// Package business holds the canonical shape of the business-outcomes feed
// and the merged business+marketing view.
package business

import (
	"adlens/domain/core"
	"adlens/domain/marketing"
)

// Record is one business-outcomes day. All measures are nullable; an absent
// column in the source feed arrives here as all-undefined values.
type Record struct {
	Date         *core.Date  `json:"date"`
	Orders       core.Number `json:"orders"`
	Revenue      core.Number `json:"revenue"`
	NewCustomers core.Number `json:"new_customers"`
}

// Table is the canonical business table.
type Table []Record

// Merged is one row of the business-to-marketing reconciliation: a business
// day left-joined to that day's cross-platform marketing totals. A day with
// no marketing match carries undefined marketing fields, never zeros.
type Merged struct {
	Date              core.Date   `json:"date"`
	Orders            core.Number `json:"orders"`
	Revenue           core.Number `json:"revenue"`
	NewCustomers      core.Number `json:"new_customers"`
	Impressions       core.Number `json:"impression"`
	Clicks            core.Number `json:"clicks"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	marketing.Rates
}
