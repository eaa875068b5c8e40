package indy

import (
	"errors"
	"testing"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/findy-network/findy-ledger-cnx/agent/ssi"
	"github.com/stretchr/testify/assert"
)

func TestAlreadyExists(t *testing.T) {
	err := alreadyExists(true, nil, "wallet w1")
	assert.ErrorIs(t, err, cnx.ErrAlreadyExists)
	assert.EqualError(t, err, "wallet w1: already exists")

	assert.NoError(t, alreadyExists(false, nil, "wallet w1"))

	other := errors.New("io")
	assert.Equal(t, other, alreadyExists(false, other, "wallet w1"))
}

func TestWallet(t *testing.T) {
	w := wallet(cnx.WalletConfig{ID: "w1", Key: "key"})
	assert.Equal(t, "w1", w.ID())
	assert.Equal(t, "key", w.Key())
	assert.Equal(t, ssi.DefaultStorageType, w.Config.StorageType)
	assert.Equal(t, ssi.KeyMethodArgon2i, w.Credentials.KeyDerivationMethod)

	w = wallet(cnx.WalletConfig{ID: "w2", Key: "k", KeyDerivationMethod: ssi.KeyMethodRaw})
	assert.Equal(t, ssi.KeyMethodRaw, w.Credentials.KeyDerivationMethod)
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, uint64(cnx.DefaultPoolVersion), c.version.Load())
}
