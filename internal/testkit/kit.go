// Package testkit synthesizes realistic input feeds: per-platform campaign
// exports with each platform's own messy column conventions, plus a
// business-outcomes feed. Tests use it for fixtures and main falls back to
// it in demo mode when no real files are present.
package testkit

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"adlens/domain/core"
	"adlens/domain/source"
	"adlens/internal/errors"
)

// MemoryLoader serves pre-built raw tables, satisfying the pipeline's
// loader port without touching disk.
type MemoryLoader struct {
	tables map[source.Kind]*source.RawTable
}

// NewMemoryLoader wraps the given tables in a loader.
func NewMemoryLoader(tables map[source.Kind]*source.RawTable) *MemoryLoader {
	return &MemoryLoader{tables: tables}
}

// Load returns the table for a kind, or the same missing-source failure a
// disk loader would report.
func (m *MemoryLoader) Load(kind source.Kind) (*source.RawTable, error) {
	t, ok := m.tables[kind]
	if !ok {
		return nil, errors.SourceMissing(kind.String(), nil)
	}
	return t, nil
}

// Fingerprint hashes the rendered content of every table.
func (m *MemoryLoader) Fingerprint() (core.SourceFingerprint, error) {
	contents := make(map[string][]byte)
	for _, kind := range source.RequiredKinds() {
		t, err := m.Load(kind)
		if err != nil {
			return "", err
		}
		contents[kind.String()] = RenderCSV(t)
	}
	return core.ComputeSourceFingerprint(contents), nil
}

// RenderCSV serializes a raw table back to CSV bytes. Good enough for
// fingerprints and for writing sample files; cells in generated data never
// contain commas.
func RenderCSV(t *source.RawTable) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(t.Columns, ","))
	b.WriteByte('\n')
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

var (
	demoStates    = []string{"CA", "NY", "TX", "WA", "FL"}
	demoTactics   = []string{"prospecting", "retargeting", "brand"}
	demoCampaigns = []string{"spring_sale", "summer_push", "clearance", "new_arrivals", "loyalty"}
)

// NewDemoLoader generates a deterministic demo dataset: days calendar days
// of campaign data per platform starting at start, plus a matching business
// feed. Each platform uses its own header dialect so the demo also
// exercises the schema normalizer the way real exports do.
func NewDemoLoader(seed int64, start core.Date, days int) *MemoryLoader {
	rng := rand.New(rand.NewSource(seed))
	tables := map[source.Kind]*source.RawTable{
		source.KindFacebook: demoFacebook(rng, start, days),
		source.KindGoogle:   demoGoogle(rng, start, days),
		source.KindTikTok:   demoTikTok(rng, start, days),
		source.KindBusiness: demoBusiness(rng, start, days),
	}
	return NewMemoryLoader(tables)
}

func demoDay(start core.Date, offset int) string {
	return core.DateOf(start.Time().AddDate(0, 0, offset)).String()
}

// demoFacebook uses headline-case headers and dollar-formatted money.
func demoFacebook(rng *rand.Rand, start core.Date, days int) *source.RawTable {
	t := &source.RawTable{
		Columns: []string{"Date", "Campaign Name", "Adset", "State", "Impressions", "Clicks", "Spend", "Attributed Revenue"},
		Path:    "demo://facebook",
	}
	for d := 0; d < days; d++ {
		for _, campaign := range demoCampaigns[:3] {
			impressions := 2000 + rng.Intn(8000)
			clicks := rng.Intn(impressions/20 + 1)
			spend := 50 + rng.Float64()*450
			revenue := spend * (0.5 + rng.Float64()*3)
			t.Rows = append(t.Rows, []string{
				demoDay(start, d),
				campaign,
				demoTactics[rng.Intn(len(demoTactics))],
				demoStates[rng.Intn(len(demoStates))],
				fmt.Sprintf("%d", impressions),
				fmt.Sprintf("%d", clicks),
				fmt.Sprintf("$%.2f", spend),
				fmt.Sprintf("$%.2f", revenue),
			})
		}
	}
	return t
}

// demoGoogle uses lowercase snake_case headers and a "cost" column.
func demoGoogle(rng *rand.Rand, start core.Date, days int) *source.RawTable {
	t := &source.RawTable{
		Columns: []string{"day", "ad_group", "channel", "region", "impr", "clicks", "cost", "attributed_revenue"},
		Path:    "demo://google",
	}
	for d := 0; d < days; d++ {
		for _, campaign := range demoCampaigns[1:4] {
			impressions := 3000 + rng.Intn(12000)
			clicks := rng.Intn(impressions/15 + 1)
			cost := 80 + rng.Float64()*600
			revenue := cost * (0.4 + rng.Float64()*2.5)
			t.Rows = append(t.Rows, []string{
				demoDay(start, d),
				campaign,
				demoTactics[rng.Intn(len(demoTactics))],
				demoStates[rng.Intn(len(demoStates))],
				fmt.Sprintf("%d", impressions),
				fmt.Sprintf("%d", clicks),
				fmt.Sprintf("%.2f", cost),
				fmt.Sprintf("%.2f", revenue),
			})
		}
	}
	return t
}

// demoTikTok carries a bare "revenue" column, exercising the guarded
// mapping, and no state column at all.
func demoTikTok(rng *rand.Rand, start core.Date, days int) *source.RawTable {
	t := &source.RawTable{
		Columns: []string{"date", "campaign", "tactic", "impression", "clicks", "spend", "revenue"},
		Path:    "demo://tiktok",
	}
	for d := 0; d < days; d++ {
		for _, campaign := range demoCampaigns[2:] {
			impressions := 5000 + rng.Intn(20000)
			clicks := rng.Intn(impressions/10 + 1)
			spend := 30 + rng.Float64()*300
			revenue := spend * (0.3 + rng.Float64()*4)
			t.Rows = append(t.Rows, []string{
				demoDay(start, d),
				campaign,
				demoTactics[rng.Intn(len(demoTactics))],
				fmt.Sprintf("%d", impressions),
				fmt.Sprintf("%d", clicks),
				fmt.Sprintf("%.2f", spend),
				fmt.Sprintf("%.2f", revenue),
			})
		}
	}
	return t
}

func demoBusiness(rng *rand.Rand, start core.Date, days int) *source.RawTable {
	t := &source.RawTable{
		Columns: []string{"date", "orders", "revenue", "new customers"},
		Path:    "demo://business",
	}
	for d := 0; d < days; d++ {
		orders := 100 + rng.Intn(400)
		t.Rows = append(t.Rows, []string{
			demoDay(start, d),
			fmt.Sprintf("%d", orders),
			fmt.Sprintf("%.2f", float64(orders)*(20+rng.Float64()*60)),
			fmt.Sprintf("%d", rng.Intn(orders)),
		})
	}
	return t
}

// DefaultDemoLoader is the stock demo dataset: 30 days ending roughly now.
func DefaultDemoLoader() *MemoryLoader {
	start := core.DateOf(time.Now().AddDate(0, 0, -30))
	return NewDemoLoader(42, start, 30)
}
