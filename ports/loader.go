// Package ports defines the interfaces through which the pipeline core
// talks to the outside world. The core depends on these, never on concrete
// adapters.
package ports

import (
	"adlens/domain/core"
	"adlens/domain/source"
)

// SourceLoader supplies the raw input tables for one pipeline invocation.
// Load returns a hard error only when no readable candidate exists for the
// kind; malformed cells are the normalizer's problem, not the loader's.
type SourceLoader interface {
	// Load returns the raw table for a record kind.
	Load(kind source.Kind) (*source.RawTable, error)

	// Fingerprint identifies the exact content of every source this loader
	// would serve, for cache keying. It must change whenever any file's
	// bytes change, not merely its name or location.
	Fingerprint() (core.SourceFingerprint, error)
}
