// Package insight computes the presentation-level views: KPI totals,
// chart series, and the spend-to-orders trend. Everything here consumes
// already-filtered pipeline views and stays null-aware: a metric with no
// defined inputs reports as undefined, never as zero.
package insight

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"adlens/domain/business"
	"adlens/domain/core"
	"adlens/domain/marketing"
	"adlens/internal/rollup"
)

// KPISummary is the headline card set. Spend-side totals come from the
// filtered marketing table; outcome totals come from the filtered merged
// view.
type KPISummary struct {
	Days              int         `json:"days"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	Orders            core.Number `json:"orders"`
	NewCustomers      core.Number `json:"new_customers"`
	ROAS              core.Number `json:"roas"`
	MeanDailySpend    core.Number `json:"mean_daily_spend"`
	MedianDailySpend  core.Number `json:"median_daily_spend"`
}

// KPIs folds the two filtered views into headline totals. Spend and
// attributed revenue sum over the marketing table, so a marketing day with
// no business record still counts and platform/state/campaign filters bite;
// orders and new customers sum over the merged view. Sums follow the same
// null semantics as the rollups, and the summary ROAS is re-derived from
// the summed marketing totals. Daily-spend statistics run over per-day
// marketing spend sums.
func KPIs(mkt marketing.Table, merged []business.Merged) KPISummary {
	summary := KPISummary{
		Days:              len(merged),
		Spend:             core.None(),
		AttributedRevenue: core.None(),
		Orders:            core.None(),
		NewCustomers:      core.None(),
	}

	for _, r := range mkt {
		summary.Spend = summary.Spend.Add(r.Spend)
		summary.AttributedRevenue = summary.AttributedRevenue.Add(r.AttributedRevenue)
	}
	for _, m := range merged {
		summary.Orders = summary.Orders.Add(m.Orders)
		summary.NewCustomers = summary.NewCustomers.Add(m.NewCustomers)
	}

	var dailySpend []float64
	for _, t := range rollup.DailyTotals(rollup.ByDayPlatform(mkt)) {
		if v, ok := t.Spend.Float(); ok {
			dailySpend = append(dailySpend, v)
		}
	}

	summary.ROAS = core.Ratio(summary.AttributedRevenue, summary.Spend)
	summary.MeanDailySpend = statNumber(stats.Mean, dailySpend)
	summary.MedianDailySpend = statNumber(stats.Median, dailySpend)
	return summary
}

// statNumber runs a summary statistic over the defined values, mapping the
// empty-input error to undefined.
func statNumber(fn func(stats.Float64Data) (float64, error), values []float64) core.Number {
	v, err := fn(values)
	if err != nil {
		return core.None()
	}
	return core.Num(v)
}

// TimeseriesPoint is one day of the spend-vs-revenue chart.
type TimeseriesPoint struct {
	Date              core.Date   `json:"date"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
}

// Timeseries projects daily totals onto the chart series.
func Timeseries(totals []marketing.DailyTotal) []TimeseriesPoint {
	points := make([]TimeseriesPoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, TimeseriesPoint{
			Date:              t.Date,
			Spend:             t.Spend,
			AttributedRevenue: t.AttributedRevenue,
		})
	}
	return points
}

// SpendPoint is one (day, platform) spend observation for stacked charts.
type SpendPoint struct {
	Date     core.Date          `json:"date"`
	Platform marketing.Platform `json:"platform"`
	Spend    core.Number        `json:"spend"`
}

// PlatformSpend projects the day-platform rollup onto the spend chart.
func PlatformSpend(rows []marketing.DayPlatformRow) []SpendPoint {
	points := make([]SpendPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, SpendPoint{Date: r.Date, Platform: r.Platform, Spend: r.Spend})
	}
	return points
}

// TrendPoint is one day where both spend and orders are defined.
type TrendPoint struct {
	Date   core.Date `json:"date"`
	Spend  float64   `json:"spend"`
	Orders float64   `json:"orders"`
}

// Trend is the spend-to-orders scatter with its least-squares overlay.
// Defined is false when fewer than two complete days exist; the scatter
// points are still returned.
type Trend struct {
	Points  []TrendPoint `json:"points"`
	Alpha   float64      `json:"alpha"`
	Beta    float64      `json:"beta"`
	R       float64      `json:"r"`
	Defined bool         `json:"defined"`
}

// SpendOrdersTrend fits orders = alpha + beta*spend over the days where
// both sides are defined. Days missing either value are excluded from the
// fit rather than imputed.
func SpendOrdersTrend(merged []business.Merged) Trend {
	var trend Trend
	var xs, ys []float64
	for _, m := range merged {
		spend, okSpend := m.Spend.Float()
		orders, okOrders := m.Orders.Float()
		if !okSpend || !okOrders {
			continue
		}
		trend.Points = append(trend.Points, TrendPoint{Date: m.Date, Spend: spend, Orders: orders})
		xs = append(xs, spend)
		ys = append(ys, orders)
	}

	if len(xs) < 2 {
		return trend
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r := stat.Correlation(xs, ys, nil)
	// A degenerate fit (zero variance in spend) produces NaNs; report it as
	// undefined instead of leaking non-JSON numbers.
	if anyNaN(alpha, beta, r) {
		return trend
	}
	trend.Alpha = alpha
	trend.Beta = beta
	trend.R = r
	trend.Defined = true
	return trend
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
