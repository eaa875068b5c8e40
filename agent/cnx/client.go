//go:generate mockgen -source=client.go -destination=mock_client_test.go -package=cnx

package cnx

import "errors"

// ErrAlreadyExists tags Client errors of creating a pool config or a wallet
// which already exists. Check it with errors.Is.
var ErrAlreadyExists = errors.New("already exists")

// WalletConfig identifies a wallet and holds the credentials to open it.
type WalletConfig struct {
	ID                  string
	StorageType         string
	Key                 string
	KeyDerivationMethod string
}

// DID is a DID created to a wallet.
type DID struct {
	DID    string
	VerKey string
}

// Client is the ledger client a Session uses. All of the calls block. Handles
// are opaque integers owned by the client.
type Client interface {
	// SetProtocolVersion sets the process-wide protocol version.
	SetProtocolVersion(version uint64) error

	// CreatePoolConfig returns an error wrapping ErrAlreadyExists if the
	// config exists.
	CreatePoolConfig(name, genesisTxn string) error
	OpenPool(name string) (handle int, err error)
	ClosePool(handle int) error

	// CreateWallet returns an error wrapping ErrAlreadyExists if the wallet
	// exists.
	CreateWallet(cfg WalletConfig) error
	OpenWallet(cfg WalletConfig) (handle int, err error)
	CloseWallet(handle int) error

	// CreateDID creates and stores a DID. Empty seed means a random DID.
	CreateDID(wallet int, seed string) (DID, error)

	BuildGetTAARequest(submitter string) (request string, err error)
	SignAndSubmit(pool, wallet int, submitter, request string) (response string, err error)
}
