/*
Package main is an application package for the findy-ledger-cnx CLI. The tool
opens connections to Hyperledger Indy ledger pools and provisions what a
ledger client needs before writing: the pool ledger config, the wallet, the
submitter DID, and the current transaction author agreement (TAA).

The same packages can be used as a library. The cnx.Session is the most
important abstraction: it owns one pool handle and one wallet handle and opens
them idempotently, so opening again after a partial failure continues where
the previous open stopped.

# About the CLI

The commands are structured as follows:

	ledger pool create|ping     pool ledger configs
	ledger steward create       steward wallet and DID from a seed
	ledger taa get              the TAA of the pool
	ledger cnx open             open a connection, --watch keeps it open
	ledger cnx status           the provisioning journal
	key create                  raw wallet keys
	version

Every flag can be given with an FCLI_ prefixed environment variable or in a
configuration file given with --config. With --dry-run the arguments are
validated but nothing is executed.

# Sub-packages

	agent/cnx      the connection session, its Client interface and refresher
	agent/journal  bbolt based provisioning journal
	agent/pool     libindy pool primitives
	agent/ssi      libindy wallet, DID and ledger request primitives
	agent/async    futures over the libindy wrapper channels
	agent/utils    process settings and helpers
	indy           the libindy implementation of cnx.Client
	cmds           command objects of the CLI
	cmd            the cobra command tree
*/
package main
