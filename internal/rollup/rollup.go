// Package rollup is the aggregation engine: it folds the canonical
// marketing table into the four standard granularities. Every rollup sums
// base counts null-aware (a group whose inputs were all null sums to null,
// not zero) and re-derives its rates from its own sums.
package rollup

import (
	"sort"

	"adlens/domain/core"
	"adlens/domain/marketing"
	"adlens/internal/metrics"
)

// counts is the shared accumulator for summed base columns.
type counts struct {
	impressions core.Number
	clicks      core.Number
	spend       core.Number
	revenue     core.Number
}

func (c *counts) add(r marketing.Record) {
	c.impressions = c.impressions.Add(r.Impressions)
	c.clicks = c.clicks.Add(r.Clicks)
	c.spend = c.spend.Add(r.Spend)
	c.revenue = c.revenue.Add(r.AttributedRevenue)
}

func (c counts) rates() marketing.Rates {
	return metrics.Derive(c.impressions, c.clicks, c.spend, c.revenue)
}

// ByDayPlatform sums base counts per (date, platform) and re-derives rates.
// Records without a date are excluded: a null grouping key contributes to
// no date-keyed group. Output is sorted chronologically, platform within
// day.
func ByDayPlatform(table marketing.Table) []marketing.DayPlatformRow {
	type key struct {
		date     core.Date
		platform marketing.Platform
	}
	acc := make(map[key]*counts)
	var order []key

	for _, r := range table {
		if r.Date == nil {
			continue
		}
		k := key{date: *r.Date, platform: r.Platform}
		c, ok := acc[k]
		if !ok {
			c = &counts{}
			acc[k] = c
			order = append(order, k)
		}
		c.add(r)
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].date != order[j].date {
			return order[i].date.Before(order[j].date)
		}
		return order[i].platform < order[j].platform
	})

	rows := make([]marketing.DayPlatformRow, 0, len(order))
	for _, k := range order {
		c := acc[k]
		rows = append(rows, marketing.DayPlatformRow{
			Date:              k.date,
			Platform:          k.platform,
			Impressions:       c.impressions,
			Clicks:            c.clicks,
			Spend:             c.spend,
			AttributedRevenue: c.revenue,
			Rates:             c.rates(),
		})
	}
	return rows
}

// ByPlatform sums base counts per platform across every date in scope,
// including records whose date is null (platform is never a null key).
// Output keeps first-seen input order.
func ByPlatform(table marketing.Table) []marketing.PlatformRow {
	acc := make(map[marketing.Platform]*counts)
	var order []marketing.Platform

	for _, r := range table {
		c, ok := acc[r.Platform]
		if !ok {
			c = &counts{}
			acc[r.Platform] = c
			order = append(order, r.Platform)
		}
		c.add(r)
	}

	rows := make([]marketing.PlatformRow, 0, len(order))
	for _, p := range order {
		c := acc[p]
		rows = append(rows, marketing.PlatformRow{
			Platform:          p,
			Impressions:       c.impressions,
			Clicks:            c.clicks,
			Spend:             c.spend,
			AttributedRevenue: c.revenue,
			Rates:             c.rates(),
		})
	}
	return rows
}

// ByCampaign sums base counts per (platform, campaign) and re-derives
// rates. Records without a campaign are excluded. Output keeps first-seen
// input order so downstream ranking can break ties by original position.
func ByCampaign(table marketing.Table) []marketing.CampaignRow {
	type key struct {
		platform marketing.Platform
		campaign string
	}
	acc := make(map[key]*counts)
	var order []key

	for _, r := range table {
		campaign, ok := r.CampaignKey()
		if !ok {
			continue
		}
		k := key{platform: r.Platform, campaign: campaign}
		c, seen := acc[k]
		if !seen {
			c = &counts{}
			acc[k] = c
			order = append(order, k)
		}
		c.add(r)
	}

	rows := make([]marketing.CampaignRow, 0, len(order))
	for _, k := range order {
		c := acc[k]
		rows = append(rows, marketing.CampaignRow{
			Platform:          k.platform,
			Campaign:          k.campaign,
			Impressions:       c.impressions,
			Clicks:            c.clicks,
			Spend:             c.spend,
			AttributedRevenue: c.revenue,
			Rates:             c.rates(),
		})
	}
	return rows
}

// DailyTotals collapses the (date, platform) rollup into cross-platform
// daily totals, the right side of the business join. One row per date,
// sorted chronologically.
func DailyTotals(rows []marketing.DayPlatformRow) []marketing.DailyTotal {
	acc := make(map[core.Date]*counts)
	var order []core.Date

	for _, r := range rows {
		c, ok := acc[r.Date]
		if !ok {
			c = &counts{}
			acc[r.Date] = c
			order = append(order, r.Date)
		}
		c.impressions = c.impressions.Add(r.Impressions)
		c.clicks = c.clicks.Add(r.Clicks)
		c.spend = c.spend.Add(r.Spend)
		c.revenue = c.revenue.Add(r.AttributedRevenue)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	totals := make([]marketing.DailyTotal, 0, len(order))
	for _, d := range order {
		c := acc[d]
		totals = append(totals, marketing.DailyTotal{
			Date:              d,
			Impressions:       c.impressions,
			Clicks:            c.clicks,
			Spend:             c.spend,
			AttributedRevenue: c.revenue,
			Rates:             c.rates(),
		})
	}
	return totals
}

// TopCampaigns ranks campaign rows by attributed revenue, descending. The
// sort is stable: campaigns with equal revenue keep their original input
// order. Rows whose revenue is undefined rank below every defined value.
// n <= 0 means no limit.
func TopCampaigns(rows []marketing.CampaignRow, n int) []marketing.CampaignRow {
	ranked := make([]marketing.CampaignRow, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, iOK := ranked[i].AttributedRevenue.Float()
		rj, jOK := ranked[j].AttributedRevenue.Float()
		if iOK != jOK {
			return iOK
		}
		return iOK && ri > rj
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
