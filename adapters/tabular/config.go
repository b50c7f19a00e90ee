package tabular

import (
	"adlens/domain/source"
)

// Config controls where the loader probes for input files.
type Config struct {
	// BaseDirs are tried in order for every candidate filename.
	BaseDirs []string
	// Candidates maps each record kind to its ordered filename candidates.
	// The first readable match wins for that kind.
	Candidates map[source.Kind][]string
}

// DefaultCandidates lists the filename variants seen across real exports,
// most specific casing first.
func DefaultCandidates() map[source.Kind][]string {
	return map[source.Kind][]string{
		source.KindFacebook: {"Facebook.csv", "facebook.csv", "FB.csv", "fb.csv", "Facebook.xlsx", "facebook.xlsx"},
		source.KindGoogle:   {"Google.csv", "google.csv", "Google Ads.csv", "google_ads.csv", "Google.xlsx", "google.xlsx"},
		source.KindTikTok:   {"TikTok.csv", "tiktok.csv", "TikTok.xlsx", "tiktok.xlsx"},
		source.KindBusiness: {"Business.csv", "business.csv", "business_data.csv", "Business.xlsx", "business.xlsx"},
	}
}

// NewConfig builds a loader config over the given base directories with the
// default filename candidates.
func NewConfig(baseDirs []string) Config {
	return Config{
		BaseDirs:   baseDirs,
		Candidates: DefaultCandidates(),
	}
}
