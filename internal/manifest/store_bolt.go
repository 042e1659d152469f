package manifest

import (
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore implements Store using bbolt
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the manifest database at dbPath
func NewBoltStore(dbPath string) (*BoltStore, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(runsBucket); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Save(run *Run) error {
	data, err := encodeRun(run)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

func (s *BoltStore) Get(id string) (*Run, error) {
	var run *Run
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		// v is only valid inside the transaction, decoding copies it out
		var err error
		run, err = decodeRun(v)
		return err
	})
	return run, err
}

func (s *BoltStore) List() ([]*Run, error) {
	var runs []*Run
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			run, err := decodeRun(v)
			if err != nil {
				log.Printf("[MANIFEST] Warning: Failed to decode run %s: %v", k, err)
				return nil // Skip corrupted runs
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(runs)
	return runs, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}
