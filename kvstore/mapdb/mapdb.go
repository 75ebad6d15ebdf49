// Package mapdb provides a map implementation of a key value store.
// It offers a lightweight in-memory backend for tests and short-lived processes.
package mapdb

import (
	"bytes"
	"sort"
	"strings"

	"github.com/iotaledger/hive.go/runtime/syncutils"
	"github.com/iotaledger/intervals/kvstore"
)

// mapDB is a simple implementation of KVStore using a map.
type mapDB struct {
	m     *syncedKVMap
	realm []byte
}

// NewMapDB creates a kvstore.KVStore implementation purely based on a go map.
func NewMapDB() kvstore.KVStore {
	return &mapDB{
		m: &syncedKVMap{m: make(map[string][]byte)},
	}
}

func (s *mapDB) WithRealm(realm kvstore.Realm) kvstore.KVStore {
	return &mapDB{
		m:     s.m, // use the same underlying map
		realm: bytes.Clone(realm),
	}
}

func (s *mapDB) Realm() kvstore.Realm {
	return bytes.Clone(s.realm)
}

// Iterate iterates over all keys and values with the provided prefix. You can pass kvstore.EmptyPrefix to iterate over all keys and values.
func (s *mapDB) Iterate(prefix kvstore.KeyPrefix, consumerFunc kvstore.IteratorKeyValueConsumerFunc) error {
	s.m.iterate(s.realm, prefix, consumerFunc)

	return nil
}

// IterateKeys iterates over all keys with the provided prefix. You can pass kvstore.EmptyPrefix to iterate over all keys.
func (s *mapDB) IterateKeys(prefix kvstore.KeyPrefix, consumerFunc kvstore.IteratorKeyConsumerFunc) error {
	s.m.iterate(s.realm, prefix, func(key kvstore.Key, _ kvstore.Value) bool {
		return consumerFunc(key)
	})

	return nil
}

func (s *mapDB) Clear() error {
	s.m.deletePrefix(s.realm)

	return nil
}

func (s *mapDB) Get(key kvstore.Key) (kvstore.Value, error) {
	value, contains := s.m.get(s.realmKey(key))
	if !contains {
		return nil, kvstore.ErrKeyNotFound
	}

	return value, nil
}

func (s *mapDB) Set(key kvstore.Key, value kvstore.Value) error {
	s.m.set(s.realmKey(key), value)

	return nil
}

func (s *mapDB) Has(key kvstore.Key) (bool, error) {
	return s.m.has(s.realmKey(key)), nil
}

func (s *mapDB) Delete(key kvstore.Key) error {
	s.m.delete(s.realmKey(key))

	return nil
}

func (s *mapDB) realmKey(key kvstore.Key) string {
	return string(s.realm) + string(key)
}

type syncedKVMap struct {
	mutex syncutils.RWMutex
	m     map[string][]byte
}

func (s *syncedKVMap) has(key string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.m[key]

	return ok
}

func (s *syncedKVMap) get(key string) ([]byte, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.m[key]
	if !ok {
		return nil, false
	}

	// always copy the value
	return bytes.Clone(value), true
}

func (s *syncedKVMap) set(key string, value []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// always copy the value
	s.m[key] = bytes.Clone(value)
}

func (s *syncedKVMap) delete(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.m, key)
}

func (s *syncedKVMap) deletePrefix(keyPrefix []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	prefix := string(keyPrefix)
	for key := range s.m {
		if strings.HasPrefix(key, prefix) {
			delete(s.m, key)
		}
	}
}

func (s *syncedKVMap) iterate(realm []byte, keyPrefix []byte, consume func(key, value []byte) bool) {
	// take a snapshot of the current elements
	s.mutex.RLock()
	prefix := string(realm) + string(keyPrefix)
	copiedElements := make(map[string][]byte)
	for key, value := range s.m {
		if strings.HasPrefix(key, prefix) {
			copiedElements[key] = bytes.Clone(value)
		}
	}
	s.mutex.RUnlock()

	keys := make([]string, 0, len(copiedElements))
	for key := range copiedElements {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !consume([]byte(key)[len(realm):], copiedElements[key]) {
			break
		}
	}
}
