package insight

import (
	"testing"
	"time"

	"adlens/domain/business"
	"adlens/domain/core"
	"adlens/domain/marketing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) core.Date {
	return core.NewDate(2024, time.January, d)
}

func datep(d int) *core.Date {
	v := day(d)
	return &v
}

func TestKPIs(t *testing.T) {
	mkt := marketing.Table{
		{Date: datep(1), Platform: marketing.PlatformFacebook, Spend: core.Num(60), AttributedRevenue: core.Num(200)},
		{Date: datep(1), Platform: marketing.PlatformGoogle, Spend: core.Num(40), AttributedRevenue: core.Num(100)},
		{Date: datep(2), Platform: marketing.PlatformFacebook, Spend: core.Num(200), AttributedRevenue: core.Num(100)},
	}
	merged := []business.Merged{
		{Date: day(1), Orders: core.Num(100), NewCustomers: core.Num(10)},
		{Date: day(2), Orders: core.Num(50), NewCustomers: core.None()},
		{Date: day(3), Orders: core.None(), NewCustomers: core.None()},
	}

	summary := KPIs(mkt, merged)
	assert.Equal(t, 3, summary.Days)
	assert.Equal(t, core.Num(300), summary.Spend)
	assert.Equal(t, core.Num(400), summary.AttributedRevenue)
	assert.Equal(t, core.Num(150), summary.Orders)
	assert.Equal(t, core.Num(10), summary.NewCustomers)
	assert.Equal(t, core.Num(400.0/300.0), summary.ROAS)

	// Daily spend stats run over per-day marketing sums (100 and 200).
	assert.Equal(t, core.Num(150), summary.MeanDailySpend)
	assert.Equal(t, core.Num(150), summary.MedianDailySpend)
}

func TestKPIsSpendComesFromMarketingTable(t *testing.T) {
	// A marketing day with no business record still counts toward spend.
	mkt := marketing.Table{
		{Date: datep(1), Platform: marketing.PlatformFacebook, Spend: core.Num(100), AttributedRevenue: core.Num(300)},
		{Date: datep(2), Platform: marketing.PlatformFacebook, Spend: core.Num(900), AttributedRevenue: core.Num(700)},
	}
	merged := []business.Merged{
		{Date: day(1), Orders: core.Num(10)},
	}

	summary := KPIs(mkt, merged)
	assert.Equal(t, core.Num(1000), summary.Spend)
	assert.Equal(t, core.Num(1000), summary.AttributedRevenue)
	assert.Equal(t, core.Num(10), summary.Orders)
	assert.Equal(t, core.Num(1), summary.ROAS)
}

func TestKPIsAllNull(t *testing.T) {
	mkt := marketing.Table{{Date: datep(1), Platform: marketing.PlatformFacebook}}
	summary := KPIs(mkt, []business.Merged{{Date: day(1)}, {Date: day(2)}})
	assert.Equal(t, core.None(), summary.Spend)
	assert.Equal(t, core.None(), summary.Orders)
	assert.Equal(t, core.None(), summary.ROAS)
	assert.Equal(t, core.None(), summary.MeanDailySpend)
	assert.Equal(t, core.None(), summary.MedianDailySpend)
}

func TestTimeseriesAndPlatformSpend(t *testing.T) {
	totals := []marketing.DailyTotal{
		{Date: day(1), Spend: core.Num(10), AttributedRevenue: core.Num(30)},
		{Date: day(2), Spend: core.None(), AttributedRevenue: core.None()},
	}
	points := Timeseries(totals)
	require.Len(t, points, 2)
	assert.Equal(t, core.Num(10), points[0].Spend)
	assert.Equal(t, core.None(), points[1].Spend)

	rows := []marketing.DayPlatformRow{
		{Date: day(1), Platform: marketing.PlatformFacebook, Spend: core.Num(7)},
	}
	spend := PlatformSpend(rows)
	require.Len(t, spend, 1)
	assert.Equal(t, marketing.PlatformFacebook, spend[0].Platform)
	assert.Equal(t, core.Num(7), spend[0].Spend)
}

func TestSpendOrdersTrend(t *testing.T) {
	// orders = 2*spend exactly; days with either side missing are excluded.
	merged := []business.Merged{
		{Date: day(1), Spend: core.Num(10), Orders: core.Num(20)},
		{Date: day(2), Spend: core.Num(20), Orders: core.Num(40)},
		{Date: day(3), Spend: core.Num(30), Orders: core.Num(60)},
		{Date: day(4), Spend: core.None(), Orders: core.Num(999)},
		{Date: day(5), Spend: core.Num(999), Orders: core.None()},
	}

	trend := SpendOrdersTrend(merged)
	require.True(t, trend.Defined)
	require.Len(t, trend.Points, 3)
	assert.InDelta(t, 0, trend.Alpha, 1e-9)
	assert.InDelta(t, 2, trend.Beta, 1e-9)
	assert.InDelta(t, 1, trend.R, 1e-9)
}

func TestSpendOrdersTrendDegenerate(t *testing.T) {
	// One complete day: scatter is returned but no fit.
	trend := SpendOrdersTrend([]business.Merged{
		{Date: day(1), Spend: core.Num(10), Orders: core.Num(20)},
	})
	assert.False(t, trend.Defined)
	assert.Len(t, trend.Points, 1)

	// Zero variance in spend: fit is degenerate.
	trend = SpendOrdersTrend([]business.Merged{
		{Date: day(1), Spend: core.Num(10), Orders: core.Num(20)},
		{Date: day(2), Spend: core.Num(10), Orders: core.Num(40)},
	})
	assert.False(t, trend.Defined)
	assert.Len(t, trend.Points, 2)
}
