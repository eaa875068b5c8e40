package cnx

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Identity is the submitter DID of a session.
type Identity struct {
	DID    string
	VerKey string
	Random bool // created without a seed
}

// Recorder receives the derived state a Session creates. Recorder errors are
// logged only.
type Recorder interface {
	DIDCreated(wallet string, id Identity) error
	TAARetrieved(pool string, taa *TAA) error
}

// Session is a connection to a ledger pool and a wallet. See the package
// documentation for the open semantics.
type Session struct {
	cfg    Config
	client Client
	id     string
	rec    Recorder

	l sync.Mutex // serializes Open, Close, CreateSubmitterDID and RetrieveTAA

	pool     atomic.Pointer[int]
	wallet   atomic.Pointer[int]
	identity atomic.Pointer[Identity]
	taa      atomic.Pointer[TAA]
}

// New returns a closed session. Nothing is opened before Open.
func New(cfg Config, client Client) *Session {
	return &Session{cfg: cfg, client: client, id: utils.UUID()}
}

// SetRecorder sets the recorder. It must be called before the session is
// used.
func (s *Session) SetRecorder(r Recorder) {
	s.rec = r
}

// Open opens the pool and the wallet, and optionally creates the submitter DID
// and retrieves the TAA. A pool which cannot be opened isn't an error, check
// IsOpen. Steps already done aren't rolled back when a later step fails, call
// Close for that.
func (s *Session) Open(createDID, retrieveTAA bool) error {
	s.l.Lock()
	defer s.l.Unlock()

	unlock := names.lock(poolKey(s.cfg.PoolConfigName), walletKey(s.cfg.WalletName))
	defer unlock()

	if err := s.openPool(); err != nil {
		return err
	}
	if err := s.openWallet(); err != nil {
		return err
	}
	if createDID {
		if err := s.createSubmitterDID(); err != nil {
			return err
		}
	}
	if retrieveTAA {
		if err := s.retrieveTAA(); err != nil {
			return err
		}
	}
	if glog.V(1) {
		glog.Infof("[%s] connection %s opened, ready: %v", s.id, s.cfg.Network, s.IsOpen())
	}
	return nil
}

func (s *Session) openPool() error {
	protocol.Lock()
	defer protocol.Unlock()

	name := s.cfg.PoolConfigName
	if err := s.client.SetProtocolVersion(s.cfg.PoolVersion); err != nil {
		return newError("set protocol version", err,
			"cannot set protocol version %d", s.cfg.PoolVersion)
	}

	if err := s.client.CreatePoolConfig(name, s.cfg.GenesisTxn); err != nil {
		if !errors.Is(err, ErrAlreadyExists) {
			return newError("create pool config", err,
				"cannot create pool config %q", name)
		}
		glog.Infof("pool config %q has already been created", name)
	} else {
		glog.Infof("pool config %q successfully created", name)
	}

	if h, ok := s.PoolHandle(); ok {
		glog.V(1).Infof("[%s] pool %q (%d) already open", s.id, name, h)
		return nil
	}
	h, err := s.client.OpenPool(name)
	if err != nil {
		// wallet only use must work without the network
		s.pool.Store(nil)
		glog.Warningf("cannot open pool %q: %v", name, err)
		return nil
	}
	s.pool.Store(&h)
	glog.Infof("pool %q (%d) successfully opened", name, h)
	return nil
}

func (s *Session) openWallet() error {
	cfg := s.cfg.walletConfig()

	if err := s.client.CreateWallet(cfg); err != nil {
		if !errors.Is(err, ErrAlreadyExists) {
			return newError("create wallet", err, "cannot create wallet %q", cfg.ID)
		}
		glog.Infof("wallet %q has already been created", cfg.ID)
	} else {
		glog.Infof("wallet %q successfully created", cfg.ID)
	}

	if h, ok := s.WalletHandle(); ok {
		glog.V(1).Infof("[%s] wallet %q (%d) already open", s.id, cfg.ID, h)
		return nil
	}
	h, err := s.client.OpenWallet(cfg)
	if err != nil {
		s.wallet.Store(nil)
		return newError("open wallet", err, "cannot open wallet %q", cfg.ID)
	}
	s.wallet.Store(&h)
	glog.Infof("wallet %q (%d) successfully opened", cfg.ID, h)
	return nil
}

// CreateSubmitterDID creates the submitter DID to the open wallet from the
// configured seed. The seed "" or "_" gives a random DID. A failure clears the
// previous submitter DID.
func (s *Session) CreateSubmitterDID() error {
	s.l.Lock()
	defer s.l.Unlock()
	return s.createSubmitterDID()
}

func (s *Session) createSubmitterDID() error {
	const op = "create submitter DID"

	w, ok := s.WalletHandle()
	if !ok {
		s.identity.Store(nil)
		return newError(op, ErrWalletNotOpen, "cannot create submitter DID")
	}

	seed := s.cfg.seed()
	d, err := s.client.CreateDID(w, seed)
	if err != nil {
		s.identity.Store(nil)
		return newError(op, err, "cannot create submitter DID")
	}
	id := &Identity{DID: d.DID, VerKey: d.VerKey, Random: seed == ""}
	s.identity.Store(id)
	glog.Infof("submitter DID %q (random: %v) successfully created", id.DID, id.Random)

	if s.rec != nil {
		if err := s.rec.DIDCreated(s.cfg.WalletName, *id); err != nil {
			glog.Warningf("[%s] recording DID: %v", s.id, err)
		}
	}
	return nil
}

// RetrieveTAA reads the current transaction author agreement from the ledger
// with the submitter DID. A ledger without an agreement gives no TAA and no
// error. A failure clears the previous TAA.
func (s *Session) RetrieveTAA() error {
	s.l.Lock()
	defer s.l.Unlock()
	return s.retrieveTAA()
}

func (s *Session) retrieveTAA() error {
	const op = "retrieve TAA"

	p, poolOK := s.PoolHandle()
	w, walletOK := s.WalletHandle()
	id := s.identity.Load()
	var cause error
	switch {
	case !poolOK:
		cause = ErrPoolNotOpen
	case !walletOK:
		cause = ErrWalletNotOpen
	case id == nil:
		cause = ErrNoSubmitterDID
	}
	if cause != nil {
		s.taa.Store(nil)
		return newError(op, cause, "cannot retrieve TAA")
	}

	response, err := s.submitGetTAA(p, w, id.DID)
	if err != nil {
		s.taa.Store(nil)
		return newError(op, err, "cannot retrieve TAA")
	}
	if glog.V(3) {
		glog.Infof("[%s] GET_TXN_AUTHR_AGRMT response: (%d) %s",
			s.id, len(response), response)
	}
	taa, err := ParseTAA(response)
	if err != nil {
		s.taa.Store(nil)
		return newError(op, err, "cannot parse TAA response")
	}
	s.taa.Store(taa)
	if taa == nil {
		glog.Infof("no TAA set on pool %q", s.cfg.PoolConfigName)
	} else {
		glog.Infof("TAA version %q retrieved from pool %q", taa.Version, s.cfg.PoolConfigName)
	}

	if s.rec != nil {
		if err := s.rec.TAARetrieved(s.cfg.PoolConfigName, taa); err != nil {
			glog.Warningf("[%s] recording TAA: %v", s.id, err)
		}
	}
	return nil
}

func (s *Session) submitGetTAA(pool, wallet int, submitter string) (response string, err error) {
	defer err2.Handle(&err)

	protocol.Lock()
	defer protocol.Unlock()

	try.To(s.client.SetProtocolVersion(s.cfg.PoolVersion))
	req := try.To1(s.client.BuildGetTAARequest(submitter))
	return try.To1(s.client.SignAndSubmit(pool, wallet, submitter, req)), nil
}

// Close closes the wallet and then the pool, and clears the submitter DID and
// the TAA. If closing the wallet fails, the pool isn't touched. Closing a
// closed session does nothing.
func (s *Session) Close() error {
	s.l.Lock()
	defer s.l.Unlock()

	unlock := names.lock(poolKey(s.cfg.PoolConfigName), walletKey(s.cfg.WalletName))
	defer unlock()

	if h, ok := s.WalletHandle(); ok {
		glog.V(1).Infof("[%s] on connection %s closing wallet: %d", s.id, s.cfg.Network, h)
		if err := s.client.CloseWallet(h); err != nil {
			return newError("close wallet", err, "cannot close wallet %d", h)
		}
		s.wallet.Store(nil)
		glog.Infof("wallet %d successfully closed", h)
	}

	if h, ok := s.PoolHandle(); ok {
		glog.V(1).Infof("[%s] on connection %s closing pool: %d", s.id, s.cfg.Network, h)
		if err := s.client.ClosePool(h); err != nil {
			return newError("close pool", err, "cannot close pool %d", h)
		}
		s.pool.Store(nil)
		glog.Infof("pool %d successfully closed", h)
	}

	s.identity.Store(nil)
	s.taa.Store(nil)
	glog.V(1).Infof("[%s] on connection %s closed pool and wallet", s.id, s.cfg.Network)
	return nil
}

// IsOpen tells if both the pool and the wallet are open.
func (s *Session) IsOpen() bool {
	return s.pool.Load() != nil && s.wallet.Load() != nil
}

func (s *Session) PoolHandle() (h int, ok bool) {
	if p := s.pool.Load(); p != nil {
		return *p, true
	}
	return 0, false
}

func (s *Session) WalletHandle() (h int, ok bool) {
	if w := s.wallet.Load(); w != nil {
		return *w, true
	}
	return 0, false
}

func (s *Session) SubmitterDID() (id Identity, ok bool) {
	if p := s.identity.Load(); p != nil {
		return *p, true
	}
	return Identity{}, false
}

func (s *Session) TAA() (taa TAA, ok bool) {
	if p := s.taa.Load(); p != nil {
		return *p, true
	}
	return TAA{}, false
}

func (s *Session) Config() Config {
	return s.cfg
}

// ID is a random session ID used in logging.
func (s *Session) ID() string {
	return s.id
}

// DidNetworkPrefix returns the network prefix of the session's DIDs, e.g.
// "sovrin:", or "" when the network is NoNetwork.
func (s *Session) DidNetworkPrefix() string {
	return PrefixFromNetwork(s.cfg.Network)
}

// QualifiedDID qualifies the DID with the DID method and the network prefix:
// did:indy:<prefix><did> in the native form, did:sov:<prefix><did> otherwise.
func (s *Session) QualifiedDID(did string) string {
	method := "did:sov:"
	if s.cfg.NativeDidIndy {
		method = "did:indy:"
	}
	return method + s.DidNetworkPrefix() + did
}

// RequiresMultiSig reports the configured signing policy of the transaction.
func (s *Session) RequiresMultiSig(t TxnKind) bool {
	return s.cfg.SignMulti.Requires(t)
}

// Status is a snapshot of a session. Fields are read one by one without
// locking, so a snapshot taken during Open or Close can mix states.
type Status struct {
	ID           string
	Network      string
	PoolName     string
	WalletName   string
	PoolHandle   int
	PoolOpen     bool
	WalletHandle int
	WalletOpen   bool
	Open         bool
	Submitter    *Identity
	QualifiedDID string
	TAA          *TAA
}

func (s *Session) Status() Status {
	st := Status{
		ID:         s.id,
		Network:    s.cfg.Network,
		PoolName:   s.cfg.PoolConfigName,
		WalletName: s.cfg.WalletName,
	}
	st.PoolHandle, st.PoolOpen = s.PoolHandle()
	st.WalletHandle, st.WalletOpen = s.WalletHandle()
	st.Open = st.PoolOpen && st.WalletOpen
	if id, ok := s.SubmitterDID(); ok {
		st.Submitter = &id
		st.QualifiedDID = s.QualifiedDID(id.DID)
	}
	if taa, ok := s.TAA(); ok {
		st.TAA = &taa
	}
	return st
}
