package cnx

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
)

// TAASource is what a Refresher refreshes, normally a *Session.
type TAASource interface {
	IsOpen() bool
	RetrieveTAA() error
}

// Refresher retrieves the TAA periodically while its source is open. Runs of
// a closed or half-open source are skipped.
type Refresher struct {
	src      TAASource
	interval time.Duration
	cron     *gocron.Scheduler

	l    sync.Mutex
	runs int
	errs int
}

func NewRefresher(src TAASource, interval time.Duration) *Refresher {
	return &Refresher{
		src:      src,
		interval: interval,
		cron:     gocron.NewScheduler(time.UTC),
	}
}

// Start starts the refresh job. The first run is done immediately.
func (r *Refresher) Start() error {
	if r.interval <= 0 {
		return errors.New("refresh interval must be positive")
	}
	_, err := r.cron.Every(r.interval).SingletonMode().Do(r.refresh)
	if err != nil {
		return err
	}
	r.cron.StartAsync()
	glog.V(1).Infof("TAA refresher started, interval %v", r.interval)
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
	glog.V(1).Infoln("TAA refresher stopped")
}

func (r *Refresher) refresh() {
	if !r.src.IsOpen() {
		glog.V(3).Infoln("session not open, skipping TAA refresh")
		return
	}
	err := r.src.RetrieveTAA()

	r.l.Lock()
	defer r.l.Unlock()
	r.runs++
	if err != nil {
		r.errs++
		glog.Warningf("TAA refresh: %v", err)
	}
}

// Counts returns how many refreshes are done and how many of them failed.
func (r *Refresher) Counts() (runs, errs int) {
	r.l.Lock()
	defer r.l.Unlock()
	return r.runs, r.errs
}
