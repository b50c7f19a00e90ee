// Package pipeline runs one full reconciliation pass: load raw sources,
// normalize them into canonical tables, derive row-level rates, build the
// four rollups, and join business outcomes to daily marketing totals. Each
// invocation constructs every table fresh from the source snapshot; nothing
// is mutated afterwards.
package pipeline

import (
	"time"

	"adlens/domain/business"
	"adlens/domain/core"
	"adlens/domain/marketing"
	"adlens/domain/source"
	"adlens/internal"
	"adlens/internal/metrics"
	"adlens/internal/reconcile"
	"adlens/internal/rollup"
	"adlens/internal/schema"
	"adlens/ports"
)

// Snapshot is the complete, immutable result of one pipeline invocation:
// the public surface the presentation layer consumes.
type Snapshot struct {
	ID          core.SnapshotID        `json:"id"`
	Fingerprint core.SourceFingerprint `json:"fingerprint"`
	CreatedAt   time.Time              `json:"created_at"`

	// Canonical tables.
	Marketing   marketing.Table                        `json:"marketing"`
	PerPlatform map[marketing.Platform]marketing.Table `json:"per_platform"`
	Business    business.Table                         `json:"business"`

	// The four rollups.
	ByDayPlatform []marketing.DayPlatformRow `json:"by_day_platform"`
	ByPlatform    []marketing.PlatformRow    `json:"by_platform"`
	ByCampaign    []marketing.CampaignRow    `json:"by_campaign"`
	DailyTotals   []marketing.DailyTotal     `json:"daily_totals"`

	// The merged business+marketing view and its cleanup report.
	Merged    []business.Merged `json:"merged"`
	Reconcile reconcile.Report  `json:"reconcile"`
}

// Pipeline wires a source loader to the transformation stages.
type Pipeline struct {
	loader ports.SourceLoader
}

// New creates a pipeline over the given loader.
func New(loader ports.SourceLoader) *Pipeline {
	return &Pipeline{loader: loader}
}

// Run executes one synchronous pass over the current source snapshot. The
// only hard failure is a missing required source; every cell-level anomaly
// has already been recovered to null by the time tables exist.
func (p *Pipeline) Run() (*Snapshot, error) {
	started := time.Now()

	fingerprint, err := p.loader.Fingerprint()
	if err != nil {
		return nil, err
	}

	perPlatform := make(map[marketing.Platform]marketing.Table)
	var union marketing.Table
	for _, kind := range source.RequiredKinds() {
		platform, ok := kind.Platform()
		if !ok {
			continue
		}
		raw, err := p.loader.Load(kind)
		if err != nil {
			return nil, err
		}
		table := metrics.DeriveTable(schema.NormalizeMarketing(raw, platform))
		perPlatform[platform] = table
		union = append(union, table...)
	}

	rawBiz, err := p.loader.Load(source.KindBusiness)
	if err != nil {
		return nil, err
	}
	biz := schema.NormalizeBusiness(rawBiz)

	byDayPlatform := rollup.ByDayPlatform(union)
	dailyTotals := rollup.DailyTotals(byDayPlatform)
	merged, report := reconcile.Merge(biz, dailyTotals)

	if report.NullDates > 0 || report.DuplicateDates > 0 {
		internal.DefaultLogger.Warn("[Pipeline] business feed cleanup: %d null-date rows dropped, %d duplicate-date rows aggregated",
			report.NullDates, report.DuplicateDates)
	}

	snap := &Snapshot{
		ID:            core.NewSnapshotID(),
		Fingerprint:   fingerprint,
		CreatedAt:     time.Now(),
		Marketing:     union,
		PerPlatform:   perPlatform,
		Business:      biz,
		ByDayPlatform: byDayPlatform,
		ByPlatform:    rollup.ByPlatform(union),
		ByCampaign:    rollup.ByCampaign(union),
		DailyTotals:   dailyTotals,
		Merged:        merged,
		Reconcile:     report,
	}

	internal.DefaultLogger.Info("[Pipeline] snapshot %s: %d marketing rows, %d business days, %d merged rows in %s",
		snap.ID, len(union), len(biz), len(merged), time.Since(started).Round(time.Millisecond))
	return snap, nil
}

// RunCached returns the cached snapshot for the loader's current content
// fingerprint, running the pipeline only on a miss. The second return
// reports whether the snapshot came from cache.
func (p *Pipeline) RunCached(cache *Cache) (*Snapshot, bool, error) {
	fingerprint, err := p.loader.Fingerprint()
	if err != nil {
		return nil, false, err
	}
	if snap, ok := cache.Get(fingerprint); ok {
		internal.DefaultLogger.Debug("[Pipeline] cache hit for fingerprint %s", fingerprint)
		return snap, true, nil
	}
	snap, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	cache.Put(snap)
	return snap, false, nil
}
