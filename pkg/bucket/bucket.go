// Package bucket implements deterministic percentage-rollout bucketing.
//
// Assign maps a (stable identifier, feature key, salt) triple into one of
// 10,000 buckets (basis points) by hashing the triple through BLAKE2b-256
// and reducing the first eight digest bytes modulo the resolution. The
// digest input and the byte-reduction method are frozen: changing either
// silently reshuffles every user's bucket assignment, which is a breaking
// change for every rollout in flight.
//
// blake2b.Sum256 is a pure function with no shared digest state, so every
// call owns its hashing context and concurrent evaluations can never corrupt
// each other's buckets.
package bucket

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/flagkit/flagkit/pkg/identity"
)

// Resolution is the size of the bucket space: one bucket per basis point.
const Resolution = 10000

// inputSeparator joins the digest input fields. Frozen.
const inputSeparator = ":"

// Assign returns the bucket of id for the given feature key and salt, in
// [0, Resolution). For fixed inputs the result is bit-identical across
// calls, goroutines, processes and platforms.
func Assign(id identity.StableID, featureKey, salt string) int {
	payload := salt + inputSeparator + featureKey + inputSeparator + id.CanonicalHex()
	digest := blake2b.Sum256([]byte(payload))
	return int(binary.BigEndian.Uint64(digest[:8]) % Resolution)
}

// Threshold converts a rollout percentage in [0, 100] to basis points,
// rounding down. 0.333% becomes 33 basis points.
func Threshold(percent float64) int {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return Resolution
	}
	return int(math.Floor(percent * 100))
}

// InRampUp reports whether a bucket falls inside the rollout percentage.
// Allowlist overrides are decided by the caller before bucketing; this
// function is purely the percentage check.
func InRampUp(percent float64, bucket int) bool {
	return bucket < Threshold(percent)
}
