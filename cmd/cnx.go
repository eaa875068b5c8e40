package cmd

import (
	"log"

	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/findy-network/findy-ledger-cnx/cmds/ledger"
	"github.com/lainio/err2"
	"github.com/spf13/cobra"
)

// cnxCmd represents the cnx command
var cnxCmd = &cobra.Command{
	Use:   "cnx",
	Short: "Parent command for ledger connection sessions",
	Long: `
Parent command for ledger connection sessions
	`,
	Run: func(cmd *cobra.Command, args []string) {
		SubCmdNeeded(cmd)
	},
}

var cnxOpenEnvs = map[string]string{
	"create-did":   "CREATE_DID",
	"retrieve-taa": "RETRIEVE_TAA",
	"watch":        "WATCH",
	"reconnect":    "RECONNECT",
}

// cnxOpenCmd represents the cnx open subcommand
var cnxOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Command for opening ledger connection",
	Long: `
Command for opening ledger connection. Prints the status of the connection
and closes it. With --watch the connection stays open and its TAA is
refreshed until the command is interrupted. With --reconnect a watched
connection retries an unreachable pool with exponential backoff.

Example
	findy-ledger-cnx ledger cnx open \
		--network sovrin:staging \
		--pool-name staging \
		--genesis-txn genesis_transactions \
		--wallet-name submitter \
		--create-did --retrieve-taa
	`,
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err := BindEnvs(cnxEnvs, "CNX"); err != nil {
			return err
		}
		return BindEnvs(cnxOpenEnvs, "CNX")
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		openCnxCmd.Refresh = utils.Settings.TAARefresh()
		return run(cmd, &openCnxCmd)
	},
}

var cnxStatusEnvs = map[string]string{
	"wallet-name": "WALLET_NAME",
	"pool-name":   "POOL_NAME",
}

// cnxStatusCmd represents the cnx status subcommand
var cnxStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Command for printing provisioning journal",
	Long: `
Command for printing what the provisioning journal knows about the wallet and
the pool. Nothing is opened.

Example
	findy-ledger-cnx ledger cnx status \
		--wallet-name submitter \
		--pool-name staging
	`,
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		return BindEnvs(cnxStatusEnvs, "CNX")
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		statusCnxCmd.Journal = utils.Settings.JournalPath()
		return run(cmd, &statusCnxCmd)
	},
}

var (
	openCnxCmd   = ledger.OpenCmd{}
	statusCnxCmd = ledger.StatusCmd{}
)

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	f := cnxOpenCmd.Flags()
	cnxFlags(f, &openCnxCmd.Cnx, cnxCmd.Name(), "_")
	f.BoolVar(&openCnxCmd.CreateDID, "create-did", false, flagInfo("create submitter DID", cnxCmd.Name(), cnxOpenEnvs["create-did"]))
	f.BoolVar(&openCnxCmd.RetrieveTAA, "retrieve-taa", false, flagInfo("retrieve TAA, needs --create-did", cnxCmd.Name(), cnxOpenEnvs["retrieve-taa"]))
	f.BoolVar(&openCnxCmd.Watch, "watch", false, flagInfo("keep connection open and refresh TAA, needs --create-did", cnxCmd.Name(), cnxOpenEnvs["watch"]))
	f.BoolVar(&openCnxCmd.Reconnect, "reconnect", false, flagInfo("retry unreachable pool of watched connection", cnxCmd.Name(), cnxOpenEnvs["reconnect"]))

	s := cnxStatusCmd.Flags()
	s.StringVar(&statusCnxCmd.WalletName, "wallet-name", "", flagInfo("wallet name", cnxCmd.Name(), cnxStatusEnvs["wallet-name"]))
	s.StringVar(&statusCnxCmd.PoolName, "pool-name", "", flagInfo("pool config name", cnxCmd.Name(), cnxStatusEnvs["pool-name"]))

	cnxCmd.AddCommand(cnxOpenCmd)
	cnxCmd.AddCommand(cnxStatusCmd)
	ledgerCmd.AddCommand(cnxCmd)
}
