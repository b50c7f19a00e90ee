package rollup

import (
	"testing"
	"time"

	"adlens/domain/core"
	"adlens/domain/marketing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func datep(year int, month time.Month, day int) *core.Date {
	d := core.NewDate(year, month, day)
	return &d
}

// fixtureTable is two platforms across two days plus one undated record.
func fixtureTable() marketing.Table {
	return marketing.Table{
		{
			Date: datep(2024, time.January, 1), Platform: marketing.PlatformFacebook,
			Campaign:    strp("alpha"),
			Impressions: core.Num(1000), Clicks: core.Num(30),
			Spend: core.Num(100), AttributedRevenue: core.Num(250),
		},
		{
			Date: datep(2024, time.January, 1), Platform: marketing.PlatformGoogle,
			Campaign:    strp("beta"),
			Impressions: core.Num(500), Clicks: core.Num(20),
			Spend: core.Num(50), AttributedRevenue: core.Num(150),
		},
		{
			Date: datep(2024, time.January, 2), Platform: marketing.PlatformFacebook,
			Campaign:    strp("alpha"),
			Impressions: core.Num(2000), Clicks: core.Num(80),
			Spend: core.Num(200), AttributedRevenue: core.Num(500),
		},
		{
			Date: nil, Platform: marketing.PlatformTikTok,
			Campaign:    strp("gamma"),
			Impressions: core.Num(999), Clicks: core.Num(9),
			Spend: core.Num(9), AttributedRevenue: core.Num(9),
		},
	}
}

func TestByDayPlatform(t *testing.T) {
	rows := ByDayPlatform(fixtureTable())

	// The undated record contributes to no date-keyed group.
	require.Len(t, rows, 3)

	// Sorted chronologically, platform within day.
	assert.Equal(t, core.NewDate(2024, time.January, 1), rows[0].Date)
	assert.Equal(t, marketing.PlatformFacebook, rows[0].Platform)
	assert.Equal(t, marketing.PlatformGoogle, rows[1].Platform)
	assert.Equal(t, core.NewDate(2024, time.January, 2), rows[2].Date)

	assert.Equal(t, core.Num(1000), rows[0].Impressions)
	assert.Equal(t, core.Num(30.0/1000.0), rows[0].CTR)
}

func TestByDayPlatformAllNullGroupSumsToNull(t *testing.T) {
	table := marketing.Table{
		{Date: datep(2024, time.March, 1), Platform: marketing.PlatformFacebook},
		{Date: datep(2024, time.March, 1), Platform: marketing.PlatformFacebook},
	}
	rows := ByDayPlatform(table)
	require.Len(t, rows, 1)

	// No defined inputs: the sum is undefined, not zero, and so are rates.
	assert.Equal(t, core.None(), rows[0].Spend)
	assert.Equal(t, core.None(), rows[0].Impressions)
	assert.Equal(t, core.None(), rows[0].CTR)
	assert.Equal(t, core.None(), rows[0].ROAS)
}

func TestByPlatform(t *testing.T) {
	rows := ByPlatform(fixtureTable())
	require.Len(t, rows, 3)

	// First-seen input order, undated records included.
	assert.Equal(t, marketing.PlatformFacebook, rows[0].Platform)
	assert.Equal(t, marketing.PlatformGoogle, rows[1].Platform)
	assert.Equal(t, marketing.PlatformTikTok, rows[2].Platform)

	assert.Equal(t, core.Num(3000), rows[0].Impressions)
	assert.Equal(t, core.Num(300), rows[0].Spend)
	assert.Equal(t, core.Num(750), rows[0].AttributedRevenue)
	assert.Equal(t, core.Num(750.0/300.0), rows[0].ROAS)

	assert.Equal(t, core.Num(999), rows[2].Impressions)
}

func TestByCampaign(t *testing.T) {
	table := fixtureTable()
	// A record without a usable campaign key never joins a campaign group.
	table = append(table, marketing.Record{
		Date: datep(2024, time.January, 1), Platform: marketing.PlatformFacebook,
		Campaign: strp(""), Spend: core.Num(1000),
	})
	table = append(table, marketing.Record{
		Date: datep(2024, time.January, 1), Platform: marketing.PlatformFacebook,
		Spend: core.Num(1000),
	})

	rows := ByCampaign(table)
	require.Len(t, rows, 3)

	assert.Equal(t, "alpha", rows[0].Campaign)
	assert.Equal(t, marketing.PlatformFacebook, rows[0].Platform)
	assert.Equal(t, core.Num(300), rows[0].Spend)
	assert.Equal(t, core.Num(750), rows[0].AttributedRevenue)

	// Same campaign name under two platforms would be two rows; here each
	// campaign is platform-scoped already.
	assert.Equal(t, "beta", rows[1].Campaign)
	assert.Equal(t, "gamma", rows[2].Campaign)
}

func TestDailyTotalsWorkedExample(t *testing.T) {
	totals := DailyTotals(ByDayPlatform(fixtureTable()))
	require.Len(t, totals, 2)

	day1 := totals[0]
	assert.Equal(t, core.NewDate(2024, time.January, 1), day1.Date)
	assert.Equal(t, core.Num(1500), day1.Impressions)
	assert.Equal(t, core.Num(50), day1.Clicks)
	assert.Equal(t, core.Num(150), day1.Spend)
	assert.Equal(t, core.Num(400), day1.AttributedRevenue)

	// Rates are re-derived from the day's summed counts, never averaged
	// from per-platform rates.
	assert.Equal(t, core.Num(50.0/1500.0), day1.CTR)
	assert.Equal(t, core.Num(150.0/50.0), day1.CPC)
	assert.Equal(t, core.Num(400.0/150.0), day1.ROAS)

	assert.Equal(t, core.NewDate(2024, time.January, 2), totals[1].Date)
	assert.Equal(t, core.Num(2000), totals[1].Impressions)
}

func TestTopCampaigns(t *testing.T) {
	rows := []marketing.CampaignRow{
		{Campaign: "low", AttributedRevenue: core.Num(10)},
		{Campaign: "tie_first", AttributedRevenue: core.Num(50)},
		{Campaign: "undefined", AttributedRevenue: core.None()},
		{Campaign: "tie_second", AttributedRevenue: core.Num(50)},
		{Campaign: "high", AttributedRevenue: core.Num(90)},
	}

	top := TopCampaigns(rows, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "high", top[0].Campaign)
	// Equal revenue keeps original input order.
	assert.Equal(t, "tie_first", top[1].Campaign)
	assert.Equal(t, "tie_second", top[2].Campaign)

	// Undefined revenue ranks below every defined value.
	all := TopCampaigns(rows, 0)
	require.Len(t, all, 5)
	assert.Equal(t, "undefined", all[4].Campaign)

	// Input order is never mutated.
	assert.Equal(t, "low", rows[0].Campaign)
}
