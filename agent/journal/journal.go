/*
Package journal records what ledger connection sessions have provisioned: the
last submitter DID of each wallet and the last TAA of each pool. The journal
is a bbolt file, by default ~/.indy_client/findy-cnx.bolt.

A Journal implements cnx.Recorder.

	j, err := journal.Open(utils.Settings.JournalPath())
	...
	defer j.Close()
	session.SetRecorder(j)
*/
package journal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/findy-network/findy-ledger-cnx/agent/cnx"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	bolt "go.etcd.io/bbolt"
)

const (
	didBucket = "dids"
	taaBucket = "taas"
)

// ErrNotExists is returned when the journal has no entry for the name.
var ErrNotExists = errors.New("journal entry not exists")

// DIDRecord is the last submitter DID created to a wallet.
type DIDRecord struct {
	DID    string    `json:"did"`
	VerKey string    `json:"verkey"`
	Random bool      `json:"random"`
	At     time.Time `json:"at"`
}

// TAARecord is the last TAA retrieved from a pool. Set is false when the pool
// had no agreement.
type TAARecord struct {
	Text    string    `json:"text,omitempty"`
	Version string    `json:"version,omitempty"`
	Set     bool      `json:"set"`
	At      time.Time `json:"at"`
}

type Journal struct {
	db *bolt.DB
}

var _ cnx.Recorder = (*Journal)(nil)

// Open opens the journal file and creates it with its buckets if needed.
func Open(filename string) (j *Journal, err error) {
	defer err2.Handle(&err, "open journal %s", filename)

	try.To(os.MkdirAll(filepath.Dir(filename), 0700))
	db := try.To1(bolt.Open(filename, 0600, &bolt.Options{Timeout: time.Second}))

	err = db.Update(func(tx *bolt.Tx) (err error) {
		defer err2.Handle(&err, "create buckets")

		try.To1(tx.CreateBucketIfNotExists([]byte(didBucket)))
		try.To1(tx.CreateBucketIfNotExists([]byte(taaBucket)))
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	glog.V(1).Infoln("journal opened:", filename)
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) DIDCreated(wallet string, id cnx.Identity) error {
	return j.put(didBucket, wallet, DIDRecord{
		DID:    id.DID,
		VerKey: id.VerKey,
		Random: id.Random,
		At:     time.Now().UTC(),
	})
}

// TAARetrieved records the TAA of the pool, nil for no agreement.
func (j *Journal) TAARetrieved(pool string, taa *cnx.TAA) error {
	r := TAARecord{At: time.Now().UTC()}
	if taa != nil {
		r.Text, r.Version, r.Set = taa.Text, taa.Version, true
	}
	return j.put(taaBucket, pool, r)
}

func (j *Journal) LastDID(wallet string) (r DIDRecord, err error) {
	err = j.get(didBucket, wallet, &r)
	return r, err
}

func (j *Journal) LastTAA(pool string) (r TAARecord, err error) {
	err = j.get(taaBucket, pool, &r)
	return r, err
}

func (j *Journal) put(bucket, key string, v any) (err error) {
	defer err2.Handle(&err, "journal %s/%s", bucket, key)

	data := try.To1(json.Marshal(v))
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(key), data)
	})
}

func (j *Journal) get(bucket, key string, v any) (err error) {
	defer err2.Handle(&err, "journal %s/%s", bucket, key)

	return j.db.View(func(tx *bolt.Tx) error {
		d := tx.Bucket([]byte(bucket)).Get([]byte(key))
		if d == nil {
			return ErrNotExists
		}
		return json.Unmarshal(d, v)
	})
}
