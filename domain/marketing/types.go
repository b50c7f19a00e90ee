// Package marketing holds the canonical shapes campaign exports are
// normalized into, independent of any platform's column naming.
package marketing

import (
	"adlens/domain/core"
)

// Platform identifies which ad platform a record came from. It is assigned
// by the loader when a source file is normalized and is immutable after
// that; it is never inferred from file content.
type Platform string

const (
	PlatformFacebook Platform = "Facebook"
	PlatformGoogle   Platform = "Google"
	PlatformTikTok   Platform = "TikTok"
)

// KnownPlatforms lists the supported platforms in canonical order.
func KnownPlatforms() []Platform {
	return []Platform{PlatformFacebook, PlatformGoogle, PlatformTikTok}
}

// Rates are the derived ratio metrics. Each is undefined (not zero) when its
// denominator was null or zero, and the same derivation is used at row level
// and at every rollup level.
type Rates struct {
	CTR  core.Number `json:"ctr"`
	CPC  core.Number `json:"cpc"`
	ROAS core.Number `json:"roas"`
}

// Record is one campaign-day line item in canonical form.
//
// The optional string dimensions (Tactic, State, Campaign) are tri-state:
// a nil pointer means the source table had no such column at all, a pointer
// to "" means the column existed but the cell was blank, and a non-empty
// value is the cell content. Filtering needs the distinction: a filter on a
// dimension the source never had is a no-op, while a blank cell simply
// fails to match.
type Record struct {
	Date              *core.Date  `json:"date"`
	Platform          Platform    `json:"platform"`
	Tactic            *string     `json:"tactic"`
	State             *string     `json:"state"`
	Campaign          *string     `json:"campaign"`
	Impressions       core.Number `json:"impression"`
	Clicks            core.Number `json:"clicks"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	Rates
}

// Table is the canonical marketing table (per platform, or the union).
type Table []Record

// CampaignKey returns the campaign grouping key and whether the record has
// one. Records without a usable key never contribute to campaign rollups.
func (r Record) CampaignKey() (string, bool) {
	if r.Campaign == nil || *r.Campaign == "" {
		return "", false
	}
	return *r.Campaign, true
}

// DayPlatformRow is the (date, platform) rollup row.
type DayPlatformRow struct {
	Date              core.Date   `json:"date"`
	Platform          Platform    `json:"platform"`
	Impressions       core.Number `json:"impression"`
	Clicks            core.Number `json:"clicks"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	Rates
}

// PlatformRow is the per-platform summary row across all dates in scope.
type PlatformRow struct {
	Platform          Platform    `json:"platform"`
	Impressions       core.Number `json:"impression"`
	Clicks            core.Number `json:"clicks"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	Rates
}

// CampaignRow is the (platform, campaign) rollup row used to rank top
// campaigns by attributed revenue.
type CampaignRow struct {
	Platform          Platform    `json:"platform"`
	Campaign          string      `json:"campaign"`
	Impressions       core.Number `json:"impression"`
	Clicks            core.Number `json:"clicks"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	Rates
}

// DailyTotal is the cross-platform daily total row, the right side of the
// business join.
type DailyTotal struct {
	Date              core.Date   `json:"date"`
	Impressions       core.Number `json:"impression"`
	Clicks            core.Number `json:"clicks"`
	Spend             core.Number `json:"spend"`
	AttributedRevenue core.Number `json:"attributed_revenue"`
	Rates
}
