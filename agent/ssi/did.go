package ssi

import (
	"github.com/findy-network/findy-ledger-cnx/agent/async"
	"github.com/findy-network/findy-wrapper-go/did"
	"github.com/mr-tron/base58"
)

// didLength is the byte length of an Indy DID, i.e. the first half of the
// verkey.
const didLength = 16

// CreateDID creates and stores a new DID to the wallet. An empty seed gives a
// random DID.
func CreateDID(wallet int, seed string) (d, verKey string, err error) {
	f := async.NewFuture(did.CreateAndStore(wallet, did.Did{Seed: seed}))
	if err := f.Err(); err != nil {
		return "", "", err
	}
	d, verKey, _ = f.Strs()
	return d, verKey, nil
}

// ValidDID tells if the string is a base58 encoded unqualified Indy DID.
func ValidDID(d string) bool {
	b, err := base58.Decode(d)
	return err == nil && len(b) == didLength
}
