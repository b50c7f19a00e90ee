// Package tabular loads the raw input files the pipeline runs over. It
// probes an ordered list of candidate filenames across an ordered list of
// base directories; the first candidate that opens and parses wins for its
// record kind. Not finding any candidate for a required kind is the one
// hard failure this layer produces.
package tabular

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"adlens/domain/core"
	"adlens/domain/source"
	"adlens/internal/errors"
)

// Loader discovers and reads source files. Each kind's raw bytes and parse
// are memoized so every Load within one pipeline invocation sees the same
// content its fingerprint covered; Fingerprint drops the memo and re-reads,
// so a rewritten file is always noticed on the next invocation.
type Loader struct {
	config Config
	mu     sync.Mutex
	raw    map[source.Kind][]byte
	tables map[source.Kind]*source.RawTable
}

// NewLoader creates a loader over the given configuration.
func NewLoader(config Config) *Loader {
	return &Loader{
		config: config,
		raw:    make(map[source.Kind][]byte),
		tables: make(map[source.Kind]*source.RawTable),
	}
}

// Load returns the raw table for a record kind, probing candidates when no
// memoized parse exists. A candidate that exists but fails to open or parse
// is skipped; only exhausting every candidate is an error.
func (l *Loader) Load(kind source.Kind) (*source.RawTable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(kind)
}

func (l *Loader) load(kind source.Kind) (*source.RawTable, error) {
	if t, ok := l.tables[kind]; ok {
		return t, nil
	}

	names := l.config.Candidates[kind]
	if len(names) == 0 {
		return nil, errors.SourceMissing(kind.String(), nil)
	}

	var tried []string
	for _, name := range names {
		for _, dir := range l.config.BaseDirs {
			path := filepath.Join(dir, name)
			tried = append(tried, path)

			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			table, err := parseTable(path, data)
			if err != nil {
				log.Printf("[Loader] skipping %s: %v", path, err)
				continue
			}

			log.Printf("[Loader] %s: %d rows, %d columns from %s", kind, len(table.Rows), len(table.Columns), path)
			l.raw[kind] = data
			l.tables[kind] = table
			return table, nil
		}
	}

	return nil, errors.SourceMissing(kind.String(), tried)
}

// Fingerprint hashes the raw bytes of every required source. It discards
// any memoized content and re-reads from disk first: the fingerprint must
// track what the files contain now, not what a previous invocation read,
// or a rewritten file would serve stale results forever. The fresh memo
// then serves the Load calls of the same invocation.
func (l *Loader) Fingerprint() (core.SourceFingerprint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.raw = make(map[source.Kind][]byte)
	l.tables = make(map[source.Kind]*source.RawTable)

	contents := make(map[string][]byte)
	for _, kind := range source.RequiredKinds() {
		if _, err := l.load(kind); err != nil {
			return "", err
		}
		contents[kind.String()] = l.raw[kind]
	}
	return core.ComputeSourceFingerprint(contents), nil
}
