// Package cmds holds the command objects of the CLI. A command is validated
// with Validate before its Exec is called. Commands print to the io.Writer
// given to Exec, which can be nil.
package cmds

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/findy-network/findy-ledger-cnx/agent/journal"
	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/findy-network/findy-ledger-cnx/indy"
	"github.com/golang/glog"
	"github.com/lainio/err2/try"
	"github.com/mr-tron/base58"
)

const rawKeyLength = 32

var ErrInvalid = errors.New("invalid command, check arguments")

type Result interface {
	JSON() ([]byte, error)
}

type Command interface {
	Validate() error
	Exec(w io.Writer) (r Result, err error)
}

// Cnx holds the ledger connection arguments shared by the commands which open
// a session.
type Cnx struct {
	Network       string
	PoolName      string
	Genesis       string
	PoolVersion   uint64
	NativeDidIndy bool
	SignMulti     cnx.SignMulti

	WalletName    string
	WalletKey     string
	WalletKeyType string
	Seed          string

	// Client is the ledger client, libindy when nil.
	Client cnx.Client `json:"-"`
}

func (c Cnx) Config() cnx.Config {
	cfg := cnx.DefaultConfig()
	if c.Network != "" {
		cfg.Network = c.Network
	}
	if c.PoolVersion != 0 {
		cfg.PoolVersion = c.PoolVersion
	}
	if c.WalletKey != "" {
		cfg.WalletKey = c.WalletKey
	}
	cfg.PoolConfigName = c.PoolName
	cfg.GenesisTxn = c.Genesis
	cfg.NativeDidIndy = c.NativeDidIndy
	cfg.SignMulti = c.SignMulti
	cfg.WalletName = c.WalletName
	cfg.WalletKeyType = c.WalletKeyType
	cfg.SubmitterSeed = c.Seed
	return cfg
}

func (c Cnx) Validate() error {
	if err := c.Config().Validate(); err != nil {
		return err
	}
	if c.WalletKeyType == "RAW" {
		return ValidateKey(c.WalletKey)
	}
	return nil
}

// Open opens a session with the arguments. The session reports to the journal
// when utils.Settings has a journal path. The returned function closes the
// session and the journal.
func (c Cnx) Open(createDID, retrieveTAA bool) (s *cnx.Session, done func(), err error) {
	client := c.Client
	if client == nil {
		client = indy.New()
	}
	s = cnx.New(c.Config(), client)

	var j *journal.Journal
	if path := utils.Settings.JournalPath(); path != "" {
		if j, err = journal.Open(path); err != nil {
			glog.Warningf("journal not in use: %v", err)
			j = nil
		} else {
			s.SetRecorder(j)
		}
	}
	done = func() {
		if err := s.Close(); err != nil {
			glog.Errorf("[%s] close: %v", s.ID(), err)
		}
		if j != nil {
			if err := j.Close(); err != nil {
				glog.Errorf("journal close: %v", err)
			}
		}
	}

	if err = s.Open(createDID, retrieveTAA); err != nil {
		done()
		return nil, nil, err
	}
	return s, done, nil
}

// PrintStatus prints the session status. Note! it throws an error.
func PrintStatus(w io.Writer, st cnx.Status) {
	Fprintln(w, "session:", st.ID)
	Fprintln(w, "network:", st.Network)
	if st.PoolOpen {
		Fprintf(w, "pool: %s (%d)\n", st.PoolName, st.PoolHandle)
	} else {
		Fprintf(w, "pool: %s (not open)\n", st.PoolName)
	}
	if st.WalletOpen {
		Fprintf(w, "wallet: %s (%d)\n", st.WalletName, st.WalletHandle)
	} else {
		Fprintf(w, "wallet: %s (not open)\n", st.WalletName)
	}
	if st.Submitter != nil {
		Fprintln(w, "submitter DID:", st.Submitter.DID, "random:", st.Submitter.Random)
		Fprintln(w, "qualified DID:", st.QualifiedDID)
	}
	if st.TAA != nil {
		Fprintln(w, "TAA version:", st.TAA.Version)
	}
	Fprintln(w, "open:", st.Open)
}

// StatusResult is the Result of the commands which open a session.
type StatusResult struct {
	cnx.Status
}

func (r StatusResult) JSON() ([]byte, error) {
	return json.Marshal(r.Status)
}

// Fprintln is fmt.Fprintln but it allows writer to be nil. Note! it throws an
// error.
func Fprintln(w io.Writer, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintln(w, a...))
	}
}

// Fprintf is fmt.Fprintf but it allows writer to be nil. Note! it throws an
// error.
func Fprintf(w io.Writer, format string, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintf(w, format, a...))
	}
}

// Fprint is fmt.Fprint but it allows writer to be nil. Note! it throws an
// error.
func Fprint(w io.Writer, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprint(w, a...))
	}
}

// ValidateKey checks a raw wallet key: base58 of 32 bytes.
func ValidateKey(k string) error {
	if k == "" {
		return errors.New("wallet key cannot be empty")
	}
	b, err := base58.Decode(k)
	if err != nil || len(b) != rawKeyLength {
		return errors.New("wallet key is not valid")
	}
	return nil
}

func ValidateSeed(seed string) error {
	if seed != "" && seed != cnx.NoNetwork && len(seed) != 32 {
		return errors.New("seed must be empty, \"_\" or length of 32")
	}
	return nil
}

// ParseLoggingArgs parses glog flags like "-logtostderr=true -v=2" from the
// string.
func ParseLoggingArgs(s string) {
	if s == "" {
		return
	}
	args := make([]string, 1, 12)
	args[0] = os.Args[0]
	args = append(args, strings.Fields(s)...)
	orgArgs := os.Args
	os.Args = args
	flag.Parse()
	os.Args = orgArgs
}
