package utils

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/google/uuid"
)

func gen() uint64 {
	m := big.NewInt(math.MaxInt64)
	r, err := rand.Int(rand.Reader, m)
	if err != nil {
		panic("cannot create nonce")
	}
	return r.Uint64()
}

// NewNonce generates new uint64 nonce with Go's crypto package. Ledger request
// IDs are nonces.
func NewNonce() uint64 {
	return gen()
}

// UUID generates new random UUID and returns value as string.
func UUID() string {
	return uuid.New().String()
}
