package cnx

import (
	"errors"
	"fmt"
)

const (
	// DefaultWalletKey is the fixed wallet credential used when the config
	// doesn't name one.
	DefaultWalletKey = "key"

	DefaultPoolVersion = 2
)

// TxnKind is a ledger write transaction whose signing policy is configurable.
type TxnKind int

const (
	NymAdd TxnKind = iota
	NymEdit
	AttribAdd
	AttribEdit
)

func (t TxnKind) String() string {
	return [...]string{"nym-add", "nym-edit", "attrib-add", "attrib-edit"}[t]
}

// SignMulti tells which transactions need multiple signatures on the network.
type SignMulti struct {
	NymAdd     bool
	NymEdit    bool
	AttribAdd  bool
	AttribEdit bool
}

// Requires reports the policy of the transaction kind.
func (s SignMulti) Requires(t TxnKind) bool {
	switch t {
	case NymAdd:
		return s.NymAdd
	case NymEdit:
		return s.NymEdit
	case AttribAdd:
		return s.AttribAdd
	case AttribEdit:
		return s.AttribEdit
	}
	return false
}

// Config is the immutable configuration of a Session.
type Config struct {
	Network        string // network name, NoNetwork for none
	PoolConfigName string // libindy pool ledger config name
	GenesisTxn     string // genesis transactions file the config is created from
	PoolVersion    uint64 // ledger protocol version

	NativeDidIndy bool // DIDs are qualified as did:indy:<network>:
	SignMulti     SignMulti

	WalletName    string
	WalletKey     string // DefaultWalletKey when empty
	WalletKeyType string // key derivation method, libindy default when empty

	SubmitterSeed string // "" or "_" for a random submitter DID

	GenesisTimestamp int64 // unix seconds of the genesis, 0 if unknown
}

// DefaultConfig returns a config with defaults for everything else than the
// names.
func DefaultConfig() Config {
	return Config{
		Network:     NoNetwork,
		PoolVersion: DefaultPoolVersion,
		WalletKey:   DefaultWalletKey,
	}
}

func (c Config) Validate() error {
	if c.Network == "" {
		return errors.New("network cannot be empty, use \"_\" for none")
	}
	if c.PoolConfigName == "" {
		return errors.New("pool config name cannot be empty")
	}
	if c.GenesisTxn == "" {
		return errors.New("pool genesis file is required")
	}
	if c.PoolVersion != 1 && c.PoolVersion != 2 {
		return fmt.Errorf("pool protocol version %d not supported", c.PoolVersion)
	}
	if c.WalletName == "" {
		return errors.New("wallet name cannot be empty")
	}
	if s := c.seed(); s != "" && len(s) != 32 {
		return errors.New("seed must be empty, \"_\" or length of 32")
	}
	if c.GenesisTimestamp < 0 {
		return errors.New("genesis timestamp cannot be negative")
	}
	return nil
}

// seed returns the normalized submitter seed: empty means random.
func (c Config) seed() string {
	if c.SubmitterSeed == NoNetwork {
		return ""
	}
	return c.SubmitterSeed
}

func (c Config) walletConfig() WalletConfig {
	key := c.WalletKey
	if key == "" {
		key = DefaultWalletKey
	}
	return WalletConfig{
		ID:                  c.WalletName,
		StorageType:         "default",
		Key:                 key,
		KeyDerivationMethod: c.WalletKeyType,
	}
}
