// Package pool wraps the libindy pool primitives of findy-wrapper-go: the
// process-wide protocol version, pool ledger configs, and pool connections.
// The functions block until the wrapper delivers the result.
package pool

import (
	"fmt"

	"github.com/findy-network/findy-ledger-cnx/agent/async"
	"github.com/findy-network/findy-wrapper-go/dto"
	indypool "github.com/findy-network/findy-wrapper-go/pool"
	"github.com/golang/glog"
)

// ConfigAlreadyExistsError is libindy's PoolLedgerConfigAlreadyExistsError.
const ConfigAlreadyExistsError = 306

// SetProtocolVersion sets libindy's protocol version. Note! The setting is
// global to the process.
func SetProtocolVersion(version uint64) error {
	r := <-indypool.SetProtocolVersion(version)
	if r.Err() != nil {
		return fmt.Errorf("set protocol version %d: %w", version, r.Err())
	}
	return nil
}

// CreateConfig creates the named pool ledger config from the genesis
// transaction file. It returns exist == true without an error when the config
// was already created.
func CreateConfig(name, genesisTxn string) (exist bool, err error) {
	r := <-indypool.CreateConfig(name, indypool.Config{GenesisTxn: genesisTxn})
	return configExists(r)
}

func configExists(r dto.Result) (exist bool, err error) {
	if r.Err() != nil {
		if r.ErrCode() == ConfigAlreadyExistsError {
			return true, nil
		}
		return false, r.Err()
	}
	return false, nil
}

// Open opens a connection to the pool by its config name and returns the pool
// handle.
func Open(name string) (h int, err error) {
	if glog.V(3) {
		glog.Info("opening pool: ", name)
	}
	f := async.NewFuture(indypool.OpenLedger(name))
	if err := f.Err(); err != nil {
		return 0, err
	}
	return f.Int(), nil
}

// Close closes the pool connection of the handle.
func Close(h int) error {
	if glog.V(3) {
		glog.Infof("closing pool(%d)", h)
	}
	return async.NewFuture(indypool.CloseLedger(h)).Err()
}
