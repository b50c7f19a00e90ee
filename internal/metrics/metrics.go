// Package metrics derives the ratio metrics (CTR, CPC, ROAS) from base
// counts. There is exactly one derivation path: rollups at every
// granularity and row-level records all go through Derive, so a rollup's
// rate is always recomputed from its own summed counts and can never be an
// average of child rates.
package metrics

import (
	"adlens/domain/core"
	"adlens/domain/marketing"
)

// Derive computes the rate metrics from base counts. Each rate is undefined
// when its denominator is null or zero. Spend and revenue may legitimately
// be negative (refunds, credits); nothing here clamps, so ROAS can be
// negative where revenue is.
func Derive(impressions, clicks, spend, revenue core.Number) marketing.Rates {
	return marketing.Rates{
		CTR:  core.Ratio(clicks, impressions),
		CPC:  core.Ratio(spend, clicks),
		ROAS: core.Ratio(revenue, spend),
	}
}

// DeriveTable fills in row-level rates for every record in place.
func DeriveTable(table marketing.Table) marketing.Table {
	for i := range table {
		r := &table[i]
		r.Rates = Derive(r.Impressions, r.Clicks, r.Spend, r.AttributedRevenue)
	}
	return table
}
