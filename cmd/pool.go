package cmd

import (
	"log"

	"github.com/findy-network/findy-ledger-cnx/cmds/pool"
	"github.com/lainio/err2"
	"github.com/spf13/cobra"
)

// poolCmd represents the pool command
var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Parent command for pool commands",
	Long: `
Parent command for pool commands
	`,
	Run: func(cmd *cobra.Command, _ []string) {
		SubCmdNeeded(cmd)
	},
}

var poolCreateEnvs = map[string]string{
	"name":             "NAME",
	"genesis-txn-file": "GENESIS_TXN_FILE",
}

// createPoolCmd represents the pool create subcommand
var createPoolCmd = &cobra.Command{
	Use:   "create",
	Short: "Command for creating pool config",
	Long: `
Command for creating pool config. An existing config isn't an error.

Example
	findy-ledger-cnx ledger pool create \
		--name findy-pool \
		--genesis-txn-file my-genesis-txn-file
	`,
	PreRunE: func(*cobra.Command, []string) (err error) {
		return BindEnvs(poolCreateEnvs, "POOL")
	},
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		return run(cmd, &pool.CreateCmd{
			Name: poolName,
			Txn:  poolGen,
		})
	},
}

var poolPingEnvs = map[string]string{
	"name":    "NAME",
	"version": "VERSION",
}

// pingPoolCmd represents the pool ping subcommand
var pingPoolCmd = &cobra.Command{
	Use:   "ping",
	Short: "Command for pinging pool",
	Long: `
Command for pinging pool

Example
	findy-ledger-cnx ledger pool ping \
		--name findy-pool
	`,
	PreRunE: func(_ *cobra.Command, _ []string) (err error) {
		return BindEnvs(poolPingEnvs, "POOL")
	},
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		return run(cmd, &pool.PingCmd{
			Name:    poolName,
			Version: poolVersion,
		})
	},
}

var (
	poolName    string
	poolGen     string
	poolVersion uint64
)

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	f := poolCmd.PersistentFlags()
	f.StringVar(&poolName, "name", "", flagInfo("name of the pool", poolCmd.Name(), poolCreateEnvs["name"]))

	c := createPoolCmd.Flags()
	c.StringVar(&poolGen, "genesis-txn-file", "", flagInfo("pool genesis transactions file", poolCmd.Name(), poolCreateEnvs["genesis-txn-file"]))

	p := pingPoolCmd.Flags()
	p.Uint64Var(&poolVersion, "version", 2, flagInfo("pool protocol version", poolCmd.Name(), poolPingEnvs["version"]))

	ledgerCmd.AddCommand(poolCmd)
	poolCmd.AddCommand(createPoolCmd)
	poolCmd.AddCommand(pingPoolCmd)
}
