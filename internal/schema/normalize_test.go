package schema

import (
	"testing"
	"time"

	"adlens/domain/core"
	"adlens/domain/marketing"
	"adlens/domain/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMarketingHeaderDialects(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
	}{
		{"facebook style", []string{"Date", "Campaign Name", "Adset", "State", "Impressions", "Clicks", "Spend", "Attributed Revenue"}},
		{"google style", []string{"day", "ad_group", "channel", "region", "impr", "clicks", "cost", "attributed_revenue"}},
		{"noisy casing", []string{"  DATE ", "Campaign", "Tactic", "State", "IMPRESSION count", "Click", "Total Spend", "Attributed  Revenue"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			raw := &source.RawTable{
				Columns: test.columns,
				Rows: [][]string{
					{"2024-01-01", "spring_sale", "prospecting", "CA", "1000", "40", "$120.50", "$360.00"},
				},
			}
			table := NormalizeMarketing(raw, marketing.PlatformFacebook)
			require.Len(t, table, 1)
			rec := table[0]

			require.NotNil(t, rec.Date)
			assert.Equal(t, core.NewDate(2024, time.January, 1), *rec.Date)
			assert.Equal(t, marketing.PlatformFacebook, rec.Platform)
			require.NotNil(t, rec.Campaign)
			assert.Equal(t, "spring_sale", *rec.Campaign)
			require.NotNil(t, rec.Tactic)
			assert.Equal(t, "prospecting", *rec.Tactic)
			require.NotNil(t, rec.State)
			assert.Equal(t, "CA", *rec.State)
			assert.Equal(t, core.Num(1000), rec.Impressions)
			assert.Equal(t, core.Num(40), rec.Clicks)
			assert.Equal(t, core.Num(120.50), rec.Spend)
			assert.Equal(t, core.Num(360), rec.AttributedRevenue)
		})
	}
}

func TestNormalizeMarketingBareRevenueGuard(t *testing.T) {
	// Without an explicit attributed-revenue column, bare "revenue" fills in.
	raw := &source.RawTable{
		Columns: []string{"date", "campaign", "spend", "revenue"},
		Rows:    [][]string{{"2024-01-01", "a", "10", "30"}},
	}
	table := NormalizeMarketing(raw, marketing.PlatformTikTok)
	require.Len(t, table, 1)
	assert.Equal(t, core.Num(30), table[0].AttributedRevenue)
}

func TestNormalizeMarketingExplicitAttributedWinsOverBareRevenue(t *testing.T) {
	// When both columns exist, attributed_revenue comes from the explicit
	// column only; the bare "revenue" column is left unmapped.
	raw := &source.RawTable{
		Columns: []string{"date", "campaign", "attributed revenue", "revenue"},
		Rows:    [][]string{{"2024-01-01", "a", "55", "999"}},
	}
	table := NormalizeMarketing(raw, marketing.PlatformGoogle)
	require.Len(t, table, 1)
	assert.Equal(t, core.Num(55), table[0].AttributedRevenue)
}

func TestNormalizeMarketingAttributedRevenueBeatsSpendRule(t *testing.T) {
	// "attributed revenue amount" contains "amount" but must still land on
	// attributed revenue, not spend.
	raw := &source.RawTable{
		Columns: []string{"date", "attributed revenue amount", "cost"},
		Rows:    [][]string{{"2024-01-01", "77", "12"}},
	}
	table := NormalizeMarketing(raw, marketing.PlatformGoogle)
	require.Len(t, table, 1)
	assert.Equal(t, core.Num(77), table[0].AttributedRevenue)
	assert.Equal(t, core.Num(12), table[0].Spend)
}

func TestNormalizeMarketingConflictLastColumnWins(t *testing.T) {
	// Two columns resolving to the same field: the later one in table order
	// supplies the value.
	raw := &source.RawTable{
		Columns: []string{"date", "spend", "cost"},
		Rows:    [][]string{{"2024-01-01", "10", "20"}},
	}
	table := NormalizeMarketing(raw, marketing.PlatformFacebook)
	require.Len(t, table, 1)
	assert.Equal(t, core.Num(20), table[0].Spend)
}

func TestNormalizeMarketingMissingColumnsAndCells(t *testing.T) {
	raw := &source.RawTable{
		Columns: []string{"date", "campaign", "clicks"},
		Rows: [][]string{
			{"2024-01-01", "a", "5"},
			{"not-a-date", "", "oops"},
			{"2024-01-03"}, // short row
		},
	}
	table := NormalizeMarketing(raw, marketing.PlatformFacebook)
	require.Len(t, table, 3)

	// Absent columns synthesize null measures and nil label pointers.
	assert.Equal(t, core.None(), table[0].Impressions)
	assert.Equal(t, core.None(), table[0].Spend)
	assert.Nil(t, table[0].State)
	assert.Nil(t, table[0].Tactic)

	// Unparsable cells coerce to null, never abort the row.
	assert.Nil(t, table[1].Date)
	assert.Equal(t, core.None(), table[1].Clicks)
	// Carried column with a blank cell: pointer to empty string, not nil.
	require.NotNil(t, table[1].Campaign)
	assert.Equal(t, "", *table[1].Campaign)

	// Short rows read as blank cells.
	assert.Equal(t, core.None(), table[2].Clicks)
}

func TestNormalizeBusiness(t *testing.T) {
	raw := &source.RawTable{
		Columns: []string{"Date", "Orders", "Revenue", "New Customers"},
		Rows: [][]string{
			{"2024-02-01", "150", "$4,200.00", "23"},
			{"bad date", "", "100", ""},
		},
	}
	table := NormalizeBusiness(raw)
	require.Len(t, table, 2)

	require.NotNil(t, table[0].Date)
	assert.Equal(t, core.NewDate(2024, time.February, 1), *table[0].Date)
	assert.Equal(t, core.Num(150), table[0].Orders)
	assert.Equal(t, core.Num(4200), table[0].Revenue)
	assert.Equal(t, core.Num(23), table[0].NewCustomers)

	assert.Nil(t, table[1].Date)
	assert.Equal(t, core.None(), table[1].Orders)
	assert.Equal(t, core.Num(100), table[1].Revenue)
}

func TestNormalizeBusinessRevenueNotConfusedWithNewCustomers(t *testing.T) {
	// "new customer revenue" style columns must not hijack plain revenue.
	raw := &source.RawTable{
		Columns: []string{"date", "total revenue", "new customers"},
		Rows:    [][]string{{"2024-02-01", "500", "7"}},
	}
	table := NormalizeBusiness(raw)
	require.Len(t, table, 1)
	assert.Equal(t, core.Num(500), table[0].Revenue)
	assert.Equal(t, core.Num(7), table[0].NewCustomers)
}
