package steward

import (
	"errors"
	"io"

	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// CreateCmd creates the steward DID to the wallet from the seed. The pool
// config and the wallet are created when needed.
type CreateCmd struct {
	cmds.Cnx
}

func (c *CreateCmd) Validate() error {
	if err := c.Cnx.Validate(); err != nil {
		return err
	}
	if c.Seed == "" || c.Seed == "_" {
		return errors.New("steward seed is required")
	}
	return cmds.ValidateSeed(c.Seed)
}

func (c *CreateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "steward create")

	s, done := try.To2(c.Open(true, false))
	defer done()

	id, _ := s.SubmitterDID()
	cmds.Fprintln(w,
		"steward DID:", id.DID,
		"\nsteward VerKey:", id.VerKey,
		"\nqualified DID:", s.QualifiedDID(id.DID))

	return cmds.StatusResult{Status: s.Status()}, nil
}
