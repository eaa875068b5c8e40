package ledger

import (
	"io"

	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// TAACmd prints the transaction author agreement of the pool.
type TAACmd struct {
	cmds.Cnx
	ShowText bool
}

func (c *TAACmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "taa")

	s, done := try.To2(c.Open(true, true))
	defer done()

	taa, ok := s.TAA()
	if !ok {
		cmds.Fprintln(w, "no TAA set on pool:", c.PoolName)
		return cmds.StatusResult{Status: s.Status()}, nil
	}
	cmds.Fprintln(w, "TAA version:", taa.Version)
	if c.ShowText {
		cmds.Fprintln(w, taa.Text)
	}
	return cmds.StatusResult{Status: s.Status()}, nil
}
