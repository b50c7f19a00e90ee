// Package source describes the raw inputs the pipeline ingests before any
// normalization: which record kinds exist, which platform each kind is
// tagged with, and the untyped table shape readers produce.
package source

import (
	"adlens/domain/marketing"
)

// Kind identifies one required input feed.
type Kind string

const (
	KindFacebook Kind = "facebook"
	KindGoogle   Kind = "google"
	KindTikTok   Kind = "tiktok"
	KindBusiness Kind = "business"
)

// RequiredKinds lists every feed the pipeline refuses to run without.
func RequiredKinds() []Kind {
	return []Kind{KindFacebook, KindGoogle, KindTikTok, KindBusiness}
}

// Platform returns the exogenous platform tag for a marketing kind. The
// second return is false for the business feed, which has no platform.
func (k Kind) Platform() (marketing.Platform, bool) {
	switch k {
	case KindFacebook:
		return marketing.PlatformFacebook, true
	case KindGoogle:
		return marketing.PlatformGoogle, true
	case KindTikTok:
		return marketing.PlatformTikTok, true
	default:
		return "", false
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// RawTable is an untyped table exactly as read from disk: header names and
// string cells, no interpretation applied. Path records where it was found.
type RawTable struct {
	Columns []string
	Rows    [][]string
	Path    string
}

// Column returns the values of the named column in row order, matching the
// header exactly. Rows shorter than the header yield "" for that cell.
func (t *RawTable) Column(name string) []string {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}
