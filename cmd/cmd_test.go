package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const walletKey = "6cih1cVgRH8yHD54nEYyPKLmdv67o8QbufxaTHot3Qxp"

var testGenesis string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "findy-ledger-cnx")
	if err != nil {
		panic(err)
	}
	testGenesis = filepath.Join(dir, "genesis_transactions")
	if err := os.WriteFile(testGenesis, []byte("{}\n"), 0600); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "create key",
			args: []string{
				"key", "create", "--dry-run",
				"--seed", "00000000000000000000thisisa_test",
			},
		},
		{
			name: "create pool",
			args: []string{
				"ledger", "pool", "create", "--dry-run",
				"--name", "findy-pool",
				"--genesis-txn-file", testGenesis,
			},
		},
		{
			name: "ping pool",
			args: []string{
				"ledger", "pool", "ping", "--dry-run",
				"--name", "findy-pool",
			},
		},
		{
			name: "create steward",
			args: []string{
				"ledger", "steward", "create", "--dry-run",
				"--pool-name", "test-pool",
				"--genesis-txn", testGenesis,
				"--seed", "000000000000000000000000Steward4",
				"--wallet-name", "steward-wallet",
				"--wallet-key", walletKey,
				"--wallet-key-type", "RAW",
			},
		},
		{
			name: "get taa",
			args: []string{
				"ledger", "taa", "get", "--dry-run",
				"--network", "sovrin:staging",
				"--pool-name", "test-pool",
				"--genesis-txn", testGenesis,
				"--wallet-name", "submitter",
				"--text",
			},
		},
		{
			name: "open cnx",
			args: []string{
				"ledger", "cnx", "open", "--dry-run",
				"--pool-name", "test-pool",
				"--genesis-txn", testGenesis,
				"--wallet-name", "submitter",
				"--create-did", "--retrieve-taa",
				"--did-indy", "--multi-nym-add",
			},
		},
		{
			name: "watch cnx",
			args: []string{
				"ledger", "cnx", "open", "--dry-run",
				"--pool-name", "test-pool",
				"--genesis-txn", testGenesis,
				"--wallet-name", "submitter",
				"--create-did", "--watch", "--reconnect",
				"--taa-refresh", "5m",
			},
		},
		{
			name: "cnx status",
			args: []string{
				"ledger", "cnx", "status", "--dry-run",
				"--journal", filepath.Join(os.TempDir(), "journal.bolt"),
				"--wallet-name", "submitter",
			},
		},
	}

	for _, test := range tests {
		rootCmd.SetArgs(test.args)
		rootCmd.SilenceUsage = true
		rootCmd.SilenceErrors = true

		t.Run(test.name, func(t *testing.T) {
			if err := rootCmd.Execute(); err != nil {
				t.Errorf("Test error = %v", err)
			}
		})
	}
}

func TestExecute_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "steward without seed",
			args: []string{
				"ledger", "steward", "create", "--dry-run",
				"--pool-name", "test-pool",
				"--genesis-txn", testGenesis,
				"--seed", "_",
				"--wallet-name", "steward-wallet",
			},
		},
		{
			name: "taa without wallet",
			args: []string{
				"ledger", "taa", "get", "--dry-run",
				"--pool-name", "test-pool",
				"--genesis-txn", testGenesis,
				"--wallet-name", "",
			},
		},
	}
	for _, test := range tests {
		rootCmd.SetArgs(test.args)
		rootCmd.SilenceUsage = true
		rootCmd.SilenceErrors = true

		t.Run(test.name, func(t *testing.T) {
			require.Error(t, rootCmd.Execute())
		})
	}
}

func TestGetEnvName(t *testing.T) {
	require.Equal(t, "FCLI_CONFIG", getEnvName("", "config"))
	require.Equal(t, "FCLI_CNX_POOL_NAME", getEnvName("cnx", "POOL_NAME"))
	require.Equal(t, "wallet name, FCLI_STEWARD_WALLET_NAME",
		flagInfo("wallet name", "steward", "WALLET_NAME"))
}
