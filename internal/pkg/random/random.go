// Package random supplies fresh generation seeds. It is the only place
// process entropy enters generation; everything downstream of a seed is
// deterministic.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

//go:generate mockgen -destination=mock/mock.go -package=randommock github.com/KirkDiggler/oripheon-api/internal/pkg/random SeedSource

const (
	// MinSeed is the smallest seed NewSeed returns.
	MinSeed int64 = 1
	// MaxSeed is the largest seed NewSeed returns.
	MaxSeed int64 = 10_000_000
)

// SeedSource hands out seeds for requests that did not supply one
type SeedSource interface {
	NewSeed() int64
}

// Crypto draws seeds from crypto/rand
type Crypto struct{}

// NewSeed returns a seed in [MinSeed, MaxSeed]
func (Crypto) NewSeed() int64 {
	return NewSeed()
}

// New returns the default seed source
func New() SeedSource {
	return Crypto{}
}

// NewSeed returns a uniformly drawn seed in [MinSeed, MaxSeed]
func NewSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(MaxSeed-MinSeed+1))
	if err != nil {
		// crypto/rand only fails when the system entropy source is broken
		panic(fmt.Sprintf("crypto/rand.Int failed: %v", err))
	}
	return n.Int64() + MinSeed
}

// Fixed always returns the same seed
type Fixed int64

// NewSeed returns the fixed value
func (f Fixed) NewSeed() int64 {
	return int64(f)
}
