package utils

import (
	"sync"
	"time"
)

// DefaultTAARefresh is the default interval of the TAA refresher.
const DefaultTAARefresh = 10 * time.Minute

var Settings = &Hub{
	journalPath: IndyClientPath("findy-cnx.bolt"),
	taaRefresh:  DefaultTAARefresh,
}

// Hub holds the process settings which aren't part of a single ledger
// connection configuration.
type Hub struct {
	journalPath string        // bbolt file of the provisioning journal
	taaRefresh  time.Duration // interval of the TAA refresher
	dryRun      bool          // validate commands only

	l sync.RWMutex
}

func (h *Hub) JournalPath() string {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.journalPath
}

// SetJournalPath sets the journal file. Empty path turns the journal off.
func (h *Hub) SetJournalPath(path string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.journalPath = path
}

func (h *Hub) TAARefresh() time.Duration {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.taaRefresh
}

func (h *Hub) SetTAARefresh(d time.Duration) {
	h.l.Lock()
	defer h.l.Unlock()
	h.taaRefresh = d
}

func (h *Hub) DryRun() bool {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.dryRun
}

func (h *Hub) SetDryRun(dryRun bool) {
	h.l.Lock()
	defer h.l.Unlock()
	h.dryRun = dryRun
}
