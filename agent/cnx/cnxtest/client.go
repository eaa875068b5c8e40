// Package cnxtest provides a cnx.Client for tests of code which opens
// sessions. It needs no libindy.
package cnxtest

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/mr-tron/base58"
)

// NoTAA is a GET_TXN_AUTHR_AGRMT response of a ledger without an agreement.
const NoTAA = `{"op":"REPLY","result":{"type":"6","data":null}}`

// Client is an in-memory cnx.Client. Pool configs and wallets are remembered
// for the life of the Client. Handles are never reused.
type Client struct {
	// TAAResponse is returned by SignAndSubmit, NoTAA when empty.
	TAAResponse string
	l       sync.Mutex
	poolErr error
	configs map[string]bool
	wallets map[string]bool
	open    map[int]bool
	next    int
}

var _ cnx.Client = (*Client)(nil)

func New() *Client {
	return &Client{
		configs: make(map[string]bool),
		wallets: make(map[string]bool),
		open:    make(map[int]bool),
		next:    1,
	}
}

func (c *Client) SetProtocolVersion(uint64) error { return nil }

func (c *Client) CreatePoolConfig(name, _ string) error {
	c.l.Lock()
	defer c.l.Unlock()
	if c.configs[name] {
		return fmt.Errorf("pool config %s: %w", name, cnx.ErrAlreadyExists)
	}
	c.configs[name] = true
	return nil
}

// SetPoolErr makes OpenPool fail with err, nil makes the pool reachable.
func (c *Client) SetPoolErr(err error) {
	c.l.Lock()
	defer c.l.Unlock()
	c.poolErr = err
}

func (c *Client) OpenPool(string) (int, error) {
	c.l.Lock()
	err := c.poolErr
	c.l.Unlock()
	if err != nil {
		return 0, err
	}
	return c.handle(), nil
}

func (c *Client) ClosePool(handle int) error { return c.close(handle) }

func (c *Client) CreateWallet(cfg cnx.WalletConfig) error {
	c.l.Lock()
	defer c.l.Unlock()
	if c.wallets[cfg.ID] {
		return fmt.Errorf("wallet %s: %w", cfg.ID, cnx.ErrAlreadyExists)
	}
	c.wallets[cfg.ID] = true
	return nil
}

func (c *Client) OpenWallet(cnx.WalletConfig) (int, error) { return c.handle(), nil }

func (c *Client) CloseWallet(handle int) error { return c.close(handle) }

// CreateDID derives the DID from the seed, so the same seed gives the same
// DID.
func (c *Client) CreateDID(_ int, seed string) (cnx.DID, error) {
	if seed == "" {
		seed = utils.UUID()
	}
	key := sha256.Sum256([]byte(seed))
	return cnx.DID{DID: base58.Encode(key[:16]), VerKey: base58.Encode(key[:])}, nil
}

func (c *Client) BuildGetTAARequest(submitter string) (string, error) {
	return fmt.Sprintf(`{"identifier":%q,"operation":{"type":"6"}}`, submitter), nil
}

func (c *Client) SignAndSubmit(_, _ int, _, _ string) (string, error) {
	if c.TAAResponse == "" {
		return NoTAA, nil
	}
	return c.TAAResponse, nil
}

// OpenHandles returns the count of pool and wallet handles not closed.
func (c *Client) OpenHandles() int {
	c.l.Lock()
	defer c.l.Unlock()
	return len(c.open)
}

func (c *Client) handle() int {
	c.l.Lock()
	defer c.l.Unlock()
	h := c.next
	c.next++
	c.open[h] = true
	return h
}

func (c *Client) close(h int) error {
	c.l.Lock()
	defer c.l.Unlock()
	if !c.open[h] {
		return fmt.Errorf("invalid handle %d", h)
	}
	delete(c.open, h)
	return nil
}
