// Package ledger holds the commands of ledger connection sessions.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/findy-network/findy-ledger-cnx/cmds"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var errPoolNotReachable = errors.New("pool isn't reachable")

// reconnectBackOff is the retry policy of a watched session whose pool
// couldn't be opened.
var reconnectBackOff = func() backoff.BackOff {
	return backoff.NewExponentialBackOff()
}

// OpenCmd opens a session, prints its status, and closes it. With Watch the
// session stays open and its TAA is refreshed until the context given with
// WithContext is done, by default until SIGINT or SIGTERM. With Reconnect a
// watched session retries opening an unreachable pool.
type OpenCmd struct {
	cmds.Cnx
	CreateDID   bool
	RetrieveTAA bool
	Watch       bool
	Reconnect   bool
	Refresh     time.Duration

	ctx context.Context
}

// WithContext sets the context ending the watch.
func (c *OpenCmd) WithContext(ctx context.Context) *OpenCmd {
	c.ctx = ctx
	return c
}

func (c *OpenCmd) Validate() error {
	if err := c.Cnx.Validate(); err != nil {
		return err
	}
	if c.RetrieveTAA && !c.CreateDID {
		return errors.New("TAA retrieval needs the submitter DID")
	}
	if c.Reconnect && !c.Watch {
		return errors.New("reconnect is for watched connections only")
	}
	if c.Watch {
		if !c.CreateDID {
			return errors.New("watch refreshes TAA, it needs the submitter DID")
		}
		if c.Refresh == 0 {
			c.Refresh = utils.Settings.TAARefresh()
		}
		if c.Refresh < time.Second {
			return errors.New("refresh interval must be at least a second")
		}
	}
	return nil
}

func (c *OpenCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "open")

	// a watched session gets its TAA from the refresher
	retrieveTAA := c.RetrieveTAA && !c.Watch
	s, done := try.To2(c.Open(c.CreateDID, retrieveTAA))
	defer done()

	cmds.PrintStatus(w, s.Status())
	if !c.Watch {
		return cmds.StatusResult{Status: s.Status()}, nil
	}

	ctx := c.ctx
	if ctx == nil {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
	}
	if !s.IsOpen() {
		if !c.Reconnect {
			return nil, fmt.Errorf("%w, nothing to watch", errPoolNotReachable)
		}
		try.To(c.reconnect(ctx, s))
		cmds.PrintStatus(w, s.Status())
	}
	r = try.To1(c.watch(ctx, w, s))
	return r, nil
}

func (c *OpenCmd) reconnect(ctx context.Context, s *cnx.Session) error {
	b := backoff.WithContext(reconnectBackOff(), ctx)
	return backoff.RetryNotify(func() error {
		if err := s.Open(c.CreateDID, false); err != nil {
			return backoff.Permanent(err)
		}
		if !s.IsOpen() {
			return errPoolNotReachable
		}
		return nil
	}, b, func(err error, d time.Duration) {
		glog.Warningf("[%s] %v, retrying in %v", s.ID(), err, d)
	})
}

func (c *OpenCmd) watch(ctx context.Context, w io.Writer, s *cnx.Session) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	refresher := cnx.NewRefresher(s, c.Refresh)
	try.To(refresher.Start())
	cmds.Fprintln(w, "watching, TAA refresh every", c.Refresh)

	<-ctx.Done()
	refresher.Stop()

	runs, errs := refresher.Counts()
	glog.V(1).Infof("[%s] TAA refreshed %d times, %d failed", s.ID(), runs, errs)
	cmds.Fprintln(w, "refreshes:", runs, "failed:", errs)
	return cmds.StatusResult{Status: s.Status()}, nil
}
