package cmd

import (
	"log"

	"github.com/findy-network/findy-ledger-cnx/cmds/steward"
	"github.com/lainio/err2"
	"github.com/spf13/cobra"
)

// stewardCmd represents the steward command
var stewardCmd = &cobra.Command{
	Use:   "steward",
	Short: "Parent command for steward wallet actions",
	Long: `
Parent command for steward wallet actions
	`,
	Run: func(cmd *cobra.Command, args []string) {
		SubCmdNeeded(cmd)
	},
}

// stewardCreateCmd represents the steward create subcommand
var stewardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Command for creating steward wallet and DID",
	Long: `
Command for creating steward wallet and DID. The pool config and the wallet
are created when they don't exist.

Example
	findy-ledger-cnx ledger steward create \
		--pool-name findy \
		--genesis-txn genesis_transactions \
		--seed 000000000000000000000000Steward1 \
		--wallet-name sovrin_steward_wallet \
		--wallet-key 9C5qFG3grXfU9LodHdMop7CNVb3HtKddjgRc7oK5KhWY \
		--wallet-key-type RAW
	`,
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		return BindEnvs(cnxEnvs, "STEWARD")
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		return run(cmd, &createStewardCmd)
	},
}

var createStewardCmd = steward.CreateCmd{}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	cnxFlags(stewardCreateCmd.Flags(), &createStewardCmd.Cnx, stewardCmd.Name(),
		"000000000000000000000000Steward1")

	stewardCmd.AddCommand(stewardCreateCmd)
	ledgerCmd.AddCommand(stewardCmd)
}
