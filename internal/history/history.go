package history

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"github.com/screa/hashbrown-miner/pkg/types"
)

const runsBucket = "runs"

// Store keeps the summaries of past simulations in a bbolt database
type Store struct {
	db *bbolt.DB
}

// Record is one stored summary with its sequence number
type Record struct {
	ID      uint64
	Summary *types.Summary
}

// Open opens or creates the history database at path
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(runsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Save appends a summary and returns its sequence number
func (s *Store) Save(summary *types.Summary) (uint64, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("encode summary: %w", err)
	}

	var id uint64
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(runsBucket))
		id, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
	if err != nil {
		return 0, fmt.Errorf("save summary: %w", err)
	}
	return id, nil
}

// List returns every stored summary, oldest first
func (s *Store) List() ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(runsBucket))
		return b.ForEach(func(k, v []byte) error {
			var summary types.Summary
			if err := json.Unmarshal(v, &summary); err != nil {
				return fmt.Errorf("decode run %d: %w", binary.BigEndian.Uint64(k), err)
			}
			records = append(records, Record{ID: binary.BigEndian.Uint64(k), Summary: &summary})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// itob encodes a sequence number so keys sort in insertion order
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
