package pool

import (
	"io"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/findy-network/findy-ledger-cnx/agent/pool"
	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// PingCmd opens a connection to the pool and closes it.
type PingCmd struct {
	Name    string
	Version uint64
}

func (c *PingCmd) Validate() error {
	if c.Name == "" {
		return cmds.ErrInvalid
	}
	if c.Version == 0 {
		c.Version = cnx.DefaultPoolVersion
	}
	return nil
}

func (c *PingCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "pool ping")

	try.To(pool.SetProtocolVersion(c.Version))
	cmds.Fprintln(w, "starting to open cnx to:", c.Name)
	h := try.To1(pool.Open(c.Name))
	cmds.Fprintln(w, "pool handle:", h)
	try.To(pool.Close(h))
	cmds.Fprintln(w, "pool closed")

	return r, nil
}
