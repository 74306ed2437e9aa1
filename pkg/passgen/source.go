package passgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 package-level generator, which
// is safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is used when no Source is configured.
var DefaultSource Source = globalSource{}

// NewSeededSource returns a deterministic PCG-backed source.
// It is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type cryptoUint64 struct{}

func (cryptoUint64) Uint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:]) // crypto/rand.Read never returns an error
	return binary.LittleEndian.Uint64(b[:])
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
var CryptoSource Source = rand.New(cryptoUint64{})
