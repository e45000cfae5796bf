// Package badgerdb implements the local object store and the per-collection
// repositories on top of an embedded badger key-value database. Each
// collection has an auto-incrementing uint64 key and zero or more non-unique
// secondary indexes maintained alongside the records.
package badgerdb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
)

// Collection names. These are the four object stores of the schema.
const (
	CollectionAccounts     = "accounts"
	CollectionTransactions = "transactions"
	CollectionCategories   = "categories"
	CollectionBudgets      = "budgets"
)

// Collections lists every collection, in schema order.
var Collections = []string{
	CollectionAccounts,
	CollectionTransactions,
	CollectionCategories,
	CollectionBudgets,
}

// Secondary index names.
const (
	IndexName       = "name"
	IndexCurrency   = "currency"
	IndexAccountID  = "accountId"
	IndexDate       = "date"
	IndexCategory   = "category"
	IndexType       = "type"
	IndexCategoryID = "categoryId"
)

// Key layout (all segments '/'-separated):
//
//	r/<collection>/<id>                    record document (JSON)
//	seq/<collection>                       last assigned id (8-byte BE)
//	i/<collection>/<index>/<value>\x00<id> index entry (empty value)
//
// Ids are big-endian so key order follows insertion order; index values are
// raw bytes, with times encoded fixed-width so lexicographic order is
// chronological.
const (
	recordPrefix  = "r/"
	counterPrefix = "seq/"
	indexPrefix   = "i/"
)

// IndexEntry is one secondary-index posting for a record.
type IndexEntry struct {
	Index string
	Value []byte
}

// Store is a thin object-store wrapper around a badger database. It owns
// the id counters and index bookkeeping; repositories own document encoding.
type Store struct {
	db *badger.DB
}

// NewStore wraps an open badger database and runs the idempotent schema
// pass: each collection's id counter is created only if absent.
func NewStore(db *badger.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.ensureCounters(); err != nil {
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureCounters() error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, col := range Collections {
			key := counterKey(col)
			_, err := txn.Get(key)
			if err == nil {
				continue // already created on a previous run
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Set(key, encodeID(0)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Insert assigns the next id for the collection and stores the document the
// encode callback produces for it, together with its index entries. The
// assignment and the write happen in one transaction.
func (s *Store) Insert(col string, encode func(id uint64) ([]byte, []IndexEntry, error)) (uint64, error) {
	var id uint64
	err := s.db.Update(func(txn *badger.Txn) error {
		last, err := readCounter(txn, col)
		if err != nil {
			return err
		}
		id = last + 1
		if err := txn.Set(counterKey(col), encodeID(id)); err != nil {
			return err
		}

		value, entries, err := encode(id)
		if err != nil {
			return err
		}
		if err := txn.Set(recordKey(col, id), value); err != nil {
			return err
		}
		return setIndexEntries(txn, col, id, entries)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", col, err)
	}
	return id, nil
}

// Get returns the raw document for id, or apperrors.ErrNotFound.
func (s *Store) Get(col string, id uint64) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(col, id))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("%s/%d: %w", col, id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%d: %w", col, id, err)
	}
	return value, nil
}

// Put replaces an existing document and swaps its index entries. The key
// must already exist; a missing key fails with apperrors.ErrNotFound.
func (s *Store) Put(col string, id uint64, value []byte, remove, add []IndexEntry) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(recordKey(col, id)); err != nil {
			return err
		}
		for _, e := range remove {
			if err := txn.Delete(indexKey(col, e.Index, e.Value, id)); err != nil {
				return err
			}
		}
		if err := txn.Set(recordKey(col, id), value); err != nil {
			return err
		}
		return setIndexEntries(txn, col, id, add)
	})
	if err == badger.ErrKeyNotFound {
		return fmt.Errorf("%s/%d: %w", col, id, apperrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s/%d: %w", col, id, err)
	}
	return nil
}

// Delete removes a document and its index entries. Deleting an absent key
// is a no-op, per the underlying store's semantics.
func (s *Store) Delete(col string, id uint64, remove []IndexEntry) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, e := range remove {
			if err := txn.Delete(indexKey(col, e.Index, e.Value, id)); err != nil {
				return err
			}
		}
		return txn.Delete(recordKey(col, id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%d: %w", col, id, err)
	}
	return nil
}

// List returns every document in the collection. No ordering is part of the
// contract, though key order makes the result insertion-ordered in practice.
func (s *Store) List(col string) ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix + col + "/")
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", col, err)
	}
	return values, nil
}

// ListByIndex returns every document whose index posting equals value.
func (s *Store) ListByIndex(col, index string, value []byte) ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = indexValuePrefix(col, index, value)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			id := idFromIndexKey(it.Item().Key())
			doc, err := readRecord(txn, col, id)
			if err != nil {
				return err
			}
			values = append(values, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan index %s.%s: %w", col, index, err)
	}
	return values, nil
}

// ListByIndexRange returns every document whose index posting falls within
// [lo, hi], inclusive on both sides. lo and hi must be encoded at the same
// fixed width as the stored postings (see EncodeTime).
func (s *Store) ListByIndexRange(col, index string, lo, hi []byte) ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(indexPrefix + col + "/" + index + "/")
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(append(append([]byte{}, prefix...), lo...)); it.Valid(); it.Next() {
			key := it.Item().Key()
			posting := key[len(prefix) : len(prefix)+len(hi)]
			if bytes.Compare(posting, hi) > 0 {
				break
			}
			doc, err := readRecord(txn, col, idFromIndexKey(key))
			if err != nil {
				return err
			}
			values = append(values, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to range-scan index %s.%s: %w", col, index, err)
	}
	return values, nil
}

// Clear empties the given collections, records and index entries alike.
// Id counters are kept, so cleared collections keep counting upward.
func (s *Store) Clear(cols ...string) error {
	prefixes := make([][]byte, 0, len(cols)*2)
	for _, col := range cols {
		prefixes = append(prefixes,
			[]byte(recordPrefix+col+"/"),
			[]byte(indexPrefix+col+"/"),
		)
	}
	if err := s.db.DropPrefix(prefixes...); err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}
	return nil
}

func readRecord(txn *badger.Txn, col string, id uint64) ([]byte, error) {
	item, err := txn.Get(recordKey(col, id))
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func readCounter(txn *badger.Txn, col string) (uint64, error) {
	item, err := txn.Get(counterKey(col))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(raw), nil
}

func setIndexEntries(txn *badger.Txn, col string, id uint64, entries []IndexEntry) error {
	for _, e := range entries {
		if err := txn.Set(indexKey(col, e.Index, e.Value, id), nil); err != nil {
			return err
		}
	}
	return nil
}

func recordKey(col string, id uint64) []byte {
	return append([]byte(recordPrefix+col+"/"), encodeID(id)...)
}

func counterKey(col string) []byte {
	return []byte(counterPrefix + col)
}

func indexKey(col, index string, value []byte, id uint64) []byte {
	key := indexValuePrefix(col, index, value)
	return append(key, encodeID(id)...)
}

func indexValuePrefix(col, index string, value []byte) []byte {
	key := []byte(indexPrefix + col + "/" + index + "/")
	key = append(key, value...)
	return append(key, 0x00)
}

func idFromIndexKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-8:])
}

func encodeID(id uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return buf[:]
}

// EncodeID encodes a record id as an index posting.
func EncodeID(id uint64) []byte {
	return encodeID(id)
}

// EncodeTime encodes a timestamp as a fixed-width UTC posting whose
// lexicographic order is chronological.
func EncodeTime(t time.Time) []byte {
	return []byte(t.UTC().Format("2006-01-02T15:04:05.000000000"))
}
