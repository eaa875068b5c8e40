// Package indy implements cnx.Client with libindy through findy-wrapper-go.
package indy

import (
	"fmt"
	"sync/atomic"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/findy-network/findy-ledger-cnx/agent/pool"
	"github.com/findy-network/findy-ledger-cnx/agent/ssi"
)

// Client is the libindy ledger client. The zero value is ready to use. It
// remembers the last protocol version set for the requests it builds.
type Client struct {
	version atomic.Uint64
}

var _ cnx.Client = (*Client)(nil)

func New() *Client {
	c := &Client{}
	c.version.Store(cnx.DefaultPoolVersion)
	return c
}

func (c *Client) SetProtocolVersion(version uint64) error {
	if err := pool.SetProtocolVersion(version); err != nil {
		return err
	}
	c.version.Store(version)
	return nil
}

func (c *Client) CreatePoolConfig(name, genesisTxn string) error {
	exist, err := pool.CreateConfig(name, genesisTxn)
	return alreadyExists(exist, err, "pool config "+name)
}

func (c *Client) OpenPool(name string) (int, error) {
	return pool.Open(name)
}

func (c *Client) ClosePool(handle int) error {
	return pool.Close(handle)
}

func (c *Client) CreateWallet(cfg cnx.WalletConfig) error {
	exist, err := wallet(cfg).Create()
	return alreadyExists(exist, err, "wallet "+cfg.ID)
}

func (c *Client) OpenWallet(cfg cnx.WalletConfig) (int, error) {
	return wallet(cfg).Open()
}

func (c *Client) CloseWallet(handle int) error {
	return (&ssi.Wallet{}).Close(handle)
}

func (c *Client) CreateDID(wallet int, seed string) (cnx.DID, error) {
	d, verKey, err := ssi.CreateDID(wallet, seed)
	if err != nil {
		return cnx.DID{}, err
	}
	return cnx.DID{DID: d, VerKey: verKey}, nil
}

func (c *Client) BuildGetTAARequest(submitter string) (string, error) {
	return ssi.BuildGetTAARequest(submitter, c.version.Load())
}

func (c *Client) SignAndSubmit(pool, wallet int, submitter, request string) (string, error) {
	return ssi.SignAndSubmit(pool, wallet, submitter, request)
}

func wallet(cfg cnx.WalletConfig) *ssi.Wallet {
	w := ssi.NewWalletCfg(cfg.ID, cfg.Key)
	if cfg.StorageType != "" {
		w.Config.StorageType = cfg.StorageType
	}
	if cfg.KeyDerivationMethod != "" {
		w.SetKeyMethod(cfg.KeyDerivationMethod)
	}
	return w
}

func alreadyExists(exist bool, err error, what string) error {
	if err != nil {
		return err
	}
	if exist {
		return fmt.Errorf("%s: %w", what, cnx.ErrAlreadyExists)
	}
	return nil
}
