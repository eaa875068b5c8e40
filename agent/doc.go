/*
Package agent holds the framework packages of ledger connections. The agent
package is empty itself, all the functionality is inside sub-packages:

	async    futures over findy-wrapper-go result channels
	cnx      the connection session, the ledger Client interface, TAA refresher
	journal  provisioning journal in a bbolt file
	pool     libindy pool configs and connections
	ssi      libindy wallets, DIDs and ledger requests
	utils    process settings, nonces, paths
*/
package agent
