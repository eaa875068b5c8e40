package cnx

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"

	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/mr-tron/base58"
)

var errUnreachable = errors.New("pool timeout")

// fakeClient is an in-memory ledger client with libindy like semantics:
// configs and wallets persist over sessions, handles are unique integers.
type fakeClient struct {
	l sync.Mutex

	version     uint64
	configs     map[string]string
	wallets     map[string]string
	openPools   map[int]string
	openWallets map[int]string
	dids        map[int][]string
	next        int

	unreachable bool   // OpenPool fails
	taaResponse string // response of SignAndSubmit
	submitErr   error
	calls       []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		configs:     make(map[string]string),
		wallets:     make(map[string]string),
		openPools:   make(map[int]string),
		openWallets: make(map[int]string),
		dids:        make(map[int][]string),
		next:        1,
		taaResponse: `{"op":"REPLY","result":{"data":{"text":"agreement","version":"1.0"}}}`,
	}
}

func (f *fakeClient) call(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeClient) SetProtocolVersion(version uint64) error {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("SetProtocolVersion")
	f.version = version
	return nil
}

func (f *fakeClient) CreatePoolConfig(name, genesisTxn string) error {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("CreatePoolConfig")
	if _, ok := f.configs[name]; ok {
		return fmt.Errorf("pool config %s: %w", name, ErrAlreadyExists)
	}
	f.configs[name] = genesisTxn
	return nil
}

func (f *fakeClient) OpenPool(name string) (int, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("OpenPool")
	if f.unreachable {
		return 0, errUnreachable
	}
	if _, ok := f.configs[name]; !ok {
		return 0, errors.New("no pool config")
	}
	h := f.next
	f.next++
	f.openPools[h] = name
	return h, nil
}

func (f *fakeClient) ClosePool(handle int) error {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("ClosePool")
	if _, ok := f.openPools[handle]; !ok {
		return errors.New("invalid pool handle")
	}
	delete(f.openPools, handle)
	return nil
}

func (f *fakeClient) CreateWallet(cfg WalletConfig) error {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("CreateWallet")
	if _, ok := f.wallets[cfg.ID]; ok {
		return fmt.Errorf("wallet %s: %w", cfg.ID, ErrAlreadyExists)
	}
	f.wallets[cfg.ID] = cfg.Key
	return nil
}

func (f *fakeClient) OpenWallet(cfg WalletConfig) (int, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("OpenWallet")
	key, ok := f.wallets[cfg.ID]
	if !ok {
		return 0, errors.New("wallet not found")
	}
	if key != cfg.Key {
		return 0, errors.New("wallet access failed")
	}
	for _, id := range f.openWallets {
		if id == cfg.ID {
			return 0, errors.New("wallet already opened")
		}
	}
	h := f.next
	f.next++
	f.openWallets[h] = cfg.ID
	return h, nil
}

func (f *fakeClient) CloseWallet(handle int) error {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("CloseWallet")
	if _, ok := f.openWallets[handle]; !ok {
		return errors.New("invalid wallet handle")
	}
	delete(f.openWallets, handle)
	return nil
}

func (f *fakeClient) CreateDID(wallet int, seed string) (DID, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("CreateDID")
	if _, ok := f.openWallets[wallet]; !ok {
		return DID{}, errors.New("invalid wallet handle")
	}
	if seed == "" {
		seed = utils.UUID()
	}
	key := sha256.Sum256([]byte(seed))
	d := DID{DID: base58.Encode(key[:16]), VerKey: base58.Encode(key[:])}
	f.dids[wallet] = append(f.dids[wallet], d.DID)
	return d, nil
}

func (f *fakeClient) BuildGetTAARequest(submitter string) (string, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("BuildGetTAARequest")
	return fmt.Sprintf(`{"identifier":%q,"operation":{"type":"6"}}`, submitter), nil
}

func (f *fakeClient) SignAndSubmit(pool, wallet int, submitter, request string) (string, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.call("SignAndSubmit")
	if f.submitErr != nil {
		return "", f.submitErr
	}
	if _, ok := f.openPools[pool]; !ok {
		return "", errors.New("invalid pool handle")
	}
	return f.taaResponse, nil
}

func (f *fakeClient) setUnreachable(v bool) {
	f.l.Lock()
	defer f.l.Unlock()
	f.unreachable = v
}

func (f *fakeClient) openCounts() (pools, wallets int) {
	f.l.Lock()
	defer f.l.Unlock()
	return len(f.openPools), len(f.openWallets)
}
