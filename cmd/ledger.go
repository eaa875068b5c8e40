package cmd

import (
	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ledgerCmd represents the ledger command
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Parent command for ledger specific actions",
	Long: `
Parent command for ledger specific actions
	`,
	Run: func(cmd *cobra.Command, args []string) {
		SubCmdNeeded(cmd)
	},
}

var cnxEnvs = map[string]string{
	"network":         "NETWORK",
	"pool-name":       "POOL_NAME",
	"genesis-txn":     "GENESIS_TXN",
	"pool-version":    "POOL_VERSION",
	"did-indy":        "DID_INDY",
	"multi-nym-add":   "MULTI_NYM_ADD",
	"multi-nym-edit":  "MULTI_NYM_EDIT",
	"multi-attr-add":  "MULTI_ATTR_ADD",
	"multi-attr-edit": "MULTI_ATTR_EDIT",
	"wallet-name":     "WALLET_NAME",
	"wallet-key":      "WALLET_KEY",
	"wallet-key-type": "WALLET_KEY_TYPE",
	"seed":            "SEED",
}

// cnxFlags adds the ledger connection flags of c to f. The env names are
// prefixed with the name of the command.
func cnxFlags(f *pflag.FlagSet, c *cmds.Cnx, cmdName, seed string) {
	info := func(s, flag string) string {
		return flagInfo(s, cmdName, cnxEnvs[flag])
	}
	f.StringVar(&c.Network, "network", "_", info("network of the DIDs, \"_\" for none", "network"))
	f.StringVar(&c.PoolName, "pool-name", "", info("pool config name", "pool-name"))
	f.StringVar(&c.Genesis, "genesis-txn", "", info("pool genesis transactions file", "genesis-txn"))
	f.Uint64Var(&c.PoolVersion, "pool-version", 2, info("pool protocol version", "pool-version"))
	f.BoolVar(&c.NativeDidIndy, "did-indy", false, info("use did:indy: DIDs instead of did:sov:", "did-indy"))
	f.BoolVar(&c.SignMulti.NymAdd, "multi-nym-add", false, info("NYM add needs multiple signatures", "multi-nym-add"))
	f.BoolVar(&c.SignMulti.NymEdit, "multi-nym-edit", false, info("NYM edit needs multiple signatures", "multi-nym-edit"))
	f.BoolVar(&c.SignMulti.AttribAdd, "multi-attr-add", false, info("ATTRIB add needs multiple signatures", "multi-attr-add"))
	f.BoolVar(&c.SignMulti.AttribEdit, "multi-attr-edit", false, info("ATTRIB edit needs multiple signatures", "multi-attr-edit"))
	f.StringVar(&c.WalletName, "wallet-name", "", info("wallet name", "wallet-name"))
	f.StringVar(&c.WalletKey, "wallet-key", "", info("wallet key, fixed default when empty", "wallet-key"))
	f.StringVar(&c.WalletKeyType, "wallet-key-type", "", info("wallet key derivation method, e.g. RAW", "wallet-key-type"))
	f.StringVar(&c.Seed, "seed", seed, info("submitter DID seed, \"_\" for random", "seed"))
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
}
