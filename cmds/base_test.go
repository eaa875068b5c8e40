package cmds

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/lainio/err2/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	assert.NoError(ValidateKey("6cih1cVgRH8yHD54nEYyPKLmdv67o8QbufxaTHot3Qxp"))
	assert.Error(ValidateKey(""))
	assert.Error(ValidateKey("wrong_key"))
	assert.Error(ValidateKey("6cih1cVgRH8yHD54nEYyPKLmdv67o8Qb"))
}

func TestValidateSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantErr bool
	}{
		{"empty", "", false},
		{"no seed", "_", false},
		{"too short", "123", true},
		{"seed 31", "0123456789012345678901234567890", true},
		{"seed 33", "012345678901234567890123456789012", true},
		{"correct seed", "000000000000000000000000Steward2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSeed(tt.seed); (err != nil) != tt.wantErr {
				t.Errorf("ValidateSeed() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCnx_Config(t *testing.T) {
	c := Cnx{
		PoolName:   "p",
		Genesis:    "genesis_transactions",
		WalletName: "w",
		Seed:       "_",
	}
	cfg := c.Config()
	require.Equal(t, cnx.NoNetwork, cfg.Network)
	require.Equal(t, uint64(cnx.DefaultPoolVersion), cfg.PoolVersion)
	require.Equal(t, cnx.DefaultWalletKey, cfg.WalletKey)
	require.NoError(t, c.Validate())

	c.WalletKeyType = "RAW"
	c.WalletKey = "wrong_key"
	require.Error(t, c.Validate())
	c.WalletKey = "6cih1cVgRH8yHD54nEYyPKLmdv67o8QbufxaTHot3Qxp"
	require.NoError(t, c.Validate())

	c.PoolVersion = 5
	require.Error(t, c.Validate())
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	st := cnx.Status{
		ID:         "id",
		Network:    "sov",
		PoolName:   "p",
		WalletName: "w",
		WalletOpen: true,
		Submitter:  &cnx.Identity{DID: "Th7MpTaRZVRYnPiabds81Y"},
		TAA:        &cnx.TAA{Version: "1.0"},
	}
	PrintStatus(&buf, st)
	out := buf.String()
	require.Contains(t, out, "pool: p (not open)")
	require.Contains(t, out, "wallet: w (0)")
	require.Contains(t, out, "submitter DID: Th7MpTaRZVRYnPiabds81Y")
	require.Contains(t, out, "TAA version: 1.0")
	require.Contains(t, out, "open: false")

	PrintStatus(nil, st)

	data, err := StatusResult{st}.JSON()
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, "sov", m["Network"])
}
