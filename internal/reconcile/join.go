// Package reconcile joins the business-outcomes table to cross-platform
// daily marketing totals on the date key. The join is left-outer on
// business dates: every business day appears exactly once, and a day the
// marketing side never measured carries nulls, not zeros.
package reconcile

import (
	"adlens/domain/business"
	"adlens/domain/core"
	"adlens/domain/marketing"
)

// Report describes what reconciliation had to clean up on the business
// side before joining.
type Report struct {
	// NullDates counts business rows dropped because their date failed to
	// parse; a null date cannot participate in a date join.
	NullDates int `json:"null_dates"`
	// DuplicateDates counts extra business rows that shared a date with an
	// earlier row and were aggregated into it. The reference behavior
	// passed duplicates through, which would have fanned the join out and
	// silently double-counted; aggregating first makes that impossible.
	DuplicateDates int `json:"duplicate_dates"`
}

// Merge left-joins business records to daily marketing totals. Business
// rows sharing a date are first combined with null-aware sums, so the
// right side being one-row-per-date makes the join strictly 1:1 or 1:0.
// Output preserves the business table's first-seen date order.
func Merge(biz business.Table, totals []marketing.DailyTotal) ([]business.Merged, Report) {
	var report Report

	acc := make(map[core.Date]*business.Record)
	var order []core.Date
	for _, r := range biz {
		if r.Date == nil {
			report.NullDates++
			continue
		}
		d := *r.Date
		if prev, ok := acc[d]; ok {
			report.DuplicateDates++
			prev.Orders = prev.Orders.Add(r.Orders)
			prev.Revenue = prev.Revenue.Add(r.Revenue)
			prev.NewCustomers = prev.NewCustomers.Add(r.NewCustomers)
			continue
		}
		rec := r
		acc[d] = &rec
		order = append(order, d)
	}

	byDate := make(map[core.Date]marketing.DailyTotal, len(totals))
	for _, t := range totals {
		byDate[t.Date] = t
	}

	merged := make([]business.Merged, 0, len(order))
	for _, d := range order {
		rec := acc[d]
		row := business.Merged{
			Date:         d,
			Orders:       rec.Orders,
			Revenue:      rec.Revenue,
			NewCustomers: rec.NewCustomers,
		}
		if t, ok := byDate[d]; ok {
			row.Impressions = t.Impressions
			row.Clicks = t.Clicks
			row.Spend = t.Spend
			row.AttributedRevenue = t.AttributedRevenue
			row.Rates = t.Rates
		}
		merged = append(merged, row)
	}
	return merged, report
}
