package core

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// Hash represents a cryptographic hash.
type Hash string

// NewHash creates a new hash from data.
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation.
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty.
func (h Hash) IsEmpty() bool {
	return h == ""
}

// SourceFingerprint identifies the exact content of one input snapshot.
// Cache entries key on it so a changed file can never serve stale results;
// names or paths alone are not enough.
type SourceFingerprint Hash

func (f SourceFingerprint) String() string { return Hash(f).String() }

// IsEmpty checks if the fingerprint is empty.
func (f SourceFingerprint) IsEmpty() bool { return Hash(f).IsEmpty() }

// ComputeSourceFingerprint hashes every source's raw bytes in a
// deterministic kind order.
func ComputeSourceFingerprint(sources map[string][]byte) SourceFingerprint {
	kinds := make([]string, 0, len(sources))
	for k := range sources {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	h := sha256.New()
	for _, kind := range kinds {
		h.Write([]byte(kind))
		h.Write([]byte{0})
		h.Write(sources[kind])
		h.Write([]byte{0})
	}
	return SourceFingerprint(hex.EncodeToString(h.Sum(nil)))
}
