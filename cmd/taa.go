package cmd

import (
	"log"

	"github.com/findy-network/findy-ledger-cnx/cmds/ledger"
	"github.com/lainio/err2"
	"github.com/spf13/cobra"
)

// taaCmd represents the taa command
var taaCmd = &cobra.Command{
	Use:   "taa",
	Short: "Parent command for transaction author agreement",
	Long: `
Parent command for transaction author agreement
	`,
	Run: func(cmd *cobra.Command, args []string) {
		SubCmdNeeded(cmd)
	},
}

var taaGetEnvs = map[string]string{
	"text": "TEXT",
}

// taaGetCmd represents the taa get subcommand
var taaGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Command for reading TAA from ledger",
	Long: `
Command for reading the transaction author agreement from the ledger with
the submitter DID.

Example
	findy-ledger-cnx ledger taa get \
		--pool-name staging \
		--genesis-txn genesis_transactions \
		--wallet-name submitter \
		--text
	`,
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err := BindEnvs(cnxEnvs, "TAA"); err != nil {
			return err
		}
		return BindEnvs(taaGetEnvs, "TAA")
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		return run(cmd, &getTAACmd)
	},
}

var getTAACmd = ledger.TAACmd{}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	f := taaGetCmd.Flags()
	cnxFlags(f, &getTAACmd.Cnx, taaCmd.Name(), "_")
	f.BoolVar(&getTAACmd.ShowText, "text", false, flagInfo("print TAA text", taaCmd.Name(), taaGetEnvs["text"]))

	taaCmd.AddCommand(taaGetCmd)
	ledgerCmd.AddCommand(taaCmd)
}
