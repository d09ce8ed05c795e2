// Package checkpoint stores analyzed file profiles in a bolt
// database, so unchanged files are not analyzed again.
package checkpoint

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/vabalass/codons-and-dicodons/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("checkpoint")

// PROFILES is the bucket name for all the file profiles.
var PROFILES = []byte("profiles")

// Stamp identifies the file version and the analysis settings.
// Cached data is only used if the stamp matches.
type Stamp struct {
	Size      int64
	ModTime   int64
	GCode     int
	MinLength int
}

// Entry stores profiles of a single file.
type Entry struct {
	Stamp
	NRecords int
	NRegions int
	Codons   codon.Profile
	Dicodons codon.Profile
}

// Cache reads and writes entries. A nil Cache or a Cache without
// database does nothing.
type Cache struct {
	db *bolt.DB
}

// Open opens (or creates) the cache database.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Save saves file entry to the database.
func (c *Cache) Save(name string, entry *Entry) error {
	if c == nil {
		return nil
	}
	dataB, err := json.Marshal(entry)
	if err != nil {
		log.Error("Error serializing profile", err)
		return err
	}
	err = SaveData(c.db, []byte(name), dataB)
	if err != nil {
		log.Error("Error saving profile", err)
	}
	return err
}

// Load returns cached entry for a file. Nil is returned if there is
// no entry or if the stamp doesn't match.
func (c *Cache) Load(name string, stamp Stamp) (*Entry, error) {
	if c == nil {
		return nil, nil
	}
	b, err := LoadData(c.db, []byte(name))
	if err != nil || b == nil {
		return nil, err
	}

	var entry *Entry
	if err = json.Unmarshal(b, &entry); err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if entry.Stamp != stamp {
		log.Debugf("Cached profile for %s is outdated", name)
		return nil, nil
	}
	if entry.Codons == nil {
		entry.Codons = codon.Profile{}
	}
	if entry.Dicodons == nil {
		entry.Dicodons = codon.Profile{}
	}
	log.Infof("Found cached profile for %s (%d records)", name, entry.NRecords)
	return entry, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(PROFILES)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(PROFILES)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
