package ssi

import (
	"github.com/findy-network/findy-ledger-cnx/agent/async"
	"github.com/findy-network/findy-wrapper-go/dto"
	"github.com/findy-network/findy-wrapper-go/wallet"
	"github.com/golang/glog"
)

// WalletAlreadyExistsError is libindy's WalletAlreadyExistsError.
const WalletAlreadyExistsError = 203

const (
	// DefaultStorageType is libindy's SQLite based wallet storage.
	DefaultStorageType = "default"

	KeyMethodArgon2i = "ARGON2I_MOD"
	KeyMethodRaw     = "RAW"
)

type Wallet struct {
	Config      wallet.Config
	Credentials wallet.Credentials
}

func NewWalletCfg(name, key string) (w *Wallet) {
	return &Wallet{
		Config: wallet.Config{ID: name, StorageType: DefaultStorageType},
		Credentials: wallet.Credentials{
			Key:                 key,
			KeyDerivationMethod: KeyMethodArgon2i,
		},
	}
}

func NewRawWalletCfg(name, key string) (w *Wallet) {
	w = NewWalletCfg(name, key)
	w.SetKeyMethod(KeyMethodRaw)
	return w
}

// Create creates the wallet. An already existing wallet is not an error, it's
// reported with exist == true.
func (w *Wallet) Create() (exist bool, err error) {
	r := <-wallet.Create(w.Config, w.Credentials)
	return walletExists(r)
}

func walletExists(r dto.Result) (exist bool, err error) {
	if r.Err() != nil {
		//	already exist, not real error, let it thru
		if WalletAlreadyExistsError != r.ErrCode() {
			return false, r.Err()
		}
		return true, nil
	}
	return false, nil
}

// Open opens the wallet and returns its handle.
func (w *Wallet) Open() (h int, err error) {
	if glog.V(3) {
		glog.Info("opening wallet: ", w.Config.ID)
	}
	f := async.NewFuture(wallet.Open(w.Config, w.Credentials))
	if err := f.Err(); err != nil {
		return 0, err
	}
	return f.Int(), nil
}

// Close closes the wallet handle.
func (w *Wallet) Close(handle int) error {
	if glog.V(3) {
		glog.Infof("closing wallet(%d): %s", handle, w.Config.ID)
	}
	return async.NewFuture(wallet.Close(handle)).Err()
}

func (w *Wallet) SetKeyMethod(m string) {
	w.Credentials.KeyDerivationMethod = m
}

func (w *Wallet) ID() string {
	return w.Config.ID
}

func (w *Wallet) Key() string {
	return w.Credentials.Key
}

// GenerateKey generates a raw wallet key. An empty seed gives a random key.
func GenerateKey(seed string) (key string, err error) {
	f := async.NewFuture(wallet.GenerateKey(seed))
	if err := f.Err(); err != nil {
		return "", err
	}
	return f.Str1(), nil
}
