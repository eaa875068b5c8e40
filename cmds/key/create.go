package key

import (
	"io"

	"github.com/findy-network/findy-ledger-cnx/agent/ssi"
	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// CreateCmd generates a raw wallet key, random when the seed is empty.
type CreateCmd struct {
	Seed string
}

func (c *CreateCmd) Validate() error {
	if c.Seed == "_" {
		return cmds.ErrInvalid
	}
	return cmds.ValidateSeed(c.Seed)
}

func (c *CreateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "key create")

	walletKey := try.To1(ssi.GenerateKey(c.Seed))
	try.To(cmds.ValidateKey(walletKey))
	cmds.Fprintln(w, walletKey)

	return r, nil
}
