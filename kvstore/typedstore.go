package kvstore

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ObjectToBytes encodes an object into its binary form.
type ObjectToBytes[O any] func(O) ([]byte, error)

// BytesToObject decodes an object from its binary form and returns the number of consumed bytes.
type BytesToObject[O any] func([]byte) (O, int, error)

// TypedStore is a generically typed wrapper around a KVStore that abstracts serialization away.
type TypedStore[K, V any] struct {
	kv KVStore

	keyToBytes   ObjectToBytes[K]
	bytesToKey   BytesToObject[K]
	valueToBytes ObjectToBytes[V]
	bytesToValue BytesToObject[V]
}

// NewTypedStore is the constructor for TypedStore.
func NewTypedStore[K, V any](kv KVStore, keyToBytes ObjectToBytes[K], bytesToKey BytesToObject[K], valueToBytes ObjectToBytes[V], bytesToValue BytesToObject[V]) *TypedStore[K, V] {
	return &TypedStore[K, V]{
		kv:           kv,
		keyToBytes:   keyToBytes,
		bytesToKey:   bytesToKey,
		valueToBytes: valueToBytes,
		bytesToValue: bytesToValue,
	}
}

// Get gets the given key or an error if an error occurred.
func (t *TypedStore[K, V]) Get(key K) (value V, err error) {
	keyBytes, err := t.keyToBytes(key)
	if err != nil {
		return value, ierrors.Wrap(err, "failed to encode key")
	}

	valueBytes, err := t.kv.Get(keyBytes)
	if err != nil {
		return value, ierrors.Wrap(err, "failed to retrieve from KV store")
	}

	if value, _, err = t.bytesToValue(valueBytes); err != nil {
		return value, ierrors.Wrap(err, "failed to decode value")
	}

	return value, nil
}

// Set sets the given key and value.
func (t *TypedStore[K, V]) Set(key K, value V) error {
	keyBytes, err := t.keyToBytes(key)
	if err != nil {
		return ierrors.Wrap(err, "failed to encode key")
	}

	valueBytes, err := t.valueToBytes(value)
	if err != nil {
		return ierrors.Wrap(err, "failed to encode value")
	}

	if err = t.kv.Set(keyBytes, valueBytes); err != nil {
		return ierrors.Wrap(err, "failed to store in KV store")
	}

	return nil
}

// Has checks whether the given key exists.
func (t *TypedStore[K, V]) Has(key K) (has bool, err error) {
	keyBytes, err := t.keyToBytes(key)
	if err != nil {
		return false, ierrors.Wrap(err, "failed to encode key")
	}

	return t.kv.Has(keyBytes)
}

// Delete deletes the given key from the store.
func (t *TypedStore[K, V]) Delete(key K) (err error) {
	keyBytes, err := t.keyToBytes(key)
	if err != nil {
		return ierrors.Wrap(err, "failed to encode key")
	}

	if err = t.kv.Delete(keyBytes); err != nil {
		return ierrors.Wrap(err, "failed to delete entry from KV store")
	}

	return nil
}

// Iterate iterates over all entries with the given key prefix in ascending key order. Entries that can not be decoded
// abort the iteration with an error.
func (t *TypedStore[K, V]) Iterate(prefix KeyPrefix, consumerFunc func(key K, value V) bool) (err error) {
	if iterationErr := t.kv.Iterate(prefix, func(keyBytes Key, valueBytes Value) bool {
		key, _, keyErr := t.bytesToKey(keyBytes)
		if keyErr != nil {
			err = ierrors.Wrap(keyErr, "failed to decode key")

			return false
		}

		value, _, valueErr := t.bytesToValue(valueBytes)
		if valueErr != nil {
			err = ierrors.Wrap(valueErr, "failed to decode value")

			return false
		}

		return consumerFunc(key, value)
	}); iterationErr != nil {
		return ierrors.Wrap(iterationErr, "failed to iterate over KV store")
	}

	return err
}

// Clear removes all entries of the underlying realm.
func (t *TypedStore[K, V]) Clear() error {
	return t.kv.Clear()
}

// KVStore returns the underlying KVStore.
func (t *TypedStore[K, V]) KVStore() KVStore {
	return t.kv
}

// StringToBytes encodes a string key.
func StringToBytes(key string) ([]byte, error) {
	return []byte(key), nil
}

// BytesToString decodes a string key.
func BytesToString(keyBytes []byte) (string, int, error) {
	return string(keyBytes), len(keyBytes), nil
}
