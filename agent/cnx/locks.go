package cnx

import (
	"sort"
	"sync"
)

// protocol serializes setting the process-wide protocol version together with
// the ledger calls which depend on it.
var protocol sync.Mutex

// names holds a lock per pool config and wallet name for the whole process.
var names = &nameLocks{m: make(map[string]*sync.Mutex)}

type nameLocks struct {
	m map[string]*sync.Mutex
	l sync.Mutex
}

func (n *nameLocks) get(key string) *sync.Mutex {
	n.l.Lock()
	defer n.l.Unlock()

	mu, ok := n.m[key]
	if !ok {
		mu = &sync.Mutex{}
		n.m[key] = mu
	}
	return mu
}

// lock locks every key in sorted order and returns a function to unlock them.
// Duplicate keys are locked once.
func (n *nameLocks) lock(keys ...string) (unlock func()) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	locked := make([]*sync.Mutex, 0, len(sorted))
	for i, k := range sorted {
		if i > 0 && sorted[i-1] == k {
			continue
		}
		mu := n.get(k)
		mu.Lock()
		locked = append(locked, mu)
	}
	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}

func poolKey(name string) string {
	return "pool/" + name
}

func walletKey(name string) string {
	return "wallet/" + name
}
