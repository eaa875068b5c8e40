package pool

import (
	"errors"
	"io"
	"os"

	"github.com/findy-network/findy-ledger-cnx/agent/pool"
	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// CreateCmd creates a pool ledger config. Running it for an existing config
// isn't an error.
type CreateCmd struct {
	Name string
	Txn  string
}

func (c *CreateCmd) Validate() error {
	if c.Name == "" {
		return errors.New("pool name cannot be empty")
	}
	if c.Txn == "" {
		return errors.New("pool genesis file is required")
	}
	_, err := os.Stat(c.Txn)
	if os.IsNotExist(err) {
		return errors.New("pool genesis does not exist")
	}
	return nil
}

func (c *CreateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "pool create")

	if try.To1(pool.CreateConfig(c.Name, c.Txn)) {
		cmds.Fprintln(w, "Pool already exists by name:", c.Name)
		return r, nil
	}
	cmds.Fprintln(w, "Pool created successfully by name:", c.Name)
	return r, nil
}
