package ledger

import (
	"errors"
	"io"

	"github.com/findy-network/findy-ledger-cnx/agent/journal"
	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// StatusCmd prints what the journal knows about the wallet and the pool
// without opening them.
type StatusCmd struct {
	Journal    string
	WalletName string
	PoolName   string
}

func (c *StatusCmd) Validate() error {
	if c.Journal == "" {
		return errors.New("journal file is required")
	}
	if c.WalletName == "" && c.PoolName == "" {
		return errors.New("wallet or pool name is required")
	}
	return nil
}

func (c *StatusCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "status")

	j := try.To1(journal.Open(c.Journal))
	defer j.Close()

	if c.WalletName != "" {
		d, err := j.LastDID(c.WalletName)
		switch {
		case errors.Is(err, journal.ErrNotExists):
			cmds.Fprintln(w, "wallet", c.WalletName+": no submitter DID")
		case err != nil:
			return nil, err
		default:
			cmds.Fprintf(w, "wallet %s: DID %s random: %v at %s\n",
				c.WalletName, d.DID, d.Random, d.At.Format("2006-01-02 15:04:05"))
		}
	}
	if c.PoolName != "" {
		t, err := j.LastTAA(c.PoolName)
		switch {
		case errors.Is(err, journal.ErrNotExists):
			cmds.Fprintln(w, "pool", c.PoolName+": TAA not retrieved")
		case err != nil:
			return nil, err
		case !t.Set:
			cmds.Fprintln(w, "pool", c.PoolName+": no TAA set")
		default:
			cmds.Fprintf(w, "pool %s: TAA version %s at %s\n",
				c.PoolName, t.Version, t.At.Format("2006-01-02 15:04:05"))
		}
	}
	return r, nil
}
