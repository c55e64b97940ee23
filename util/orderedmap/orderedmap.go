// Package orderedmap implements a map with deterministic, insertion-ordered
// iteration. The run state mapping and the run log are both keyed structures
// whose printed and encoded forms must be byte-stable between runs, so a
// plain Go map (randomized iteration order) cannot back them.
package orderedmap

import (
	"bytes"
	"encoding/gob"
	"io"
)

// Pair is a single key-value entry. Pairs are exposed so that callers can
// range over the map in insertion order without the closure indirection of
// OrderedRange.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map whose iteration order is the insertion order of its
// keys. Storing an existing key updates the value in place and keeps the
// key's original position.
type OrderedMap[K comparable, V any] struct {
	// Pairs holds the entries in insertion order. It should be treated as
	// read-only by callers; use Store to modify the map.
	Pairs []Pair[K, V]

	index map[K]int
}

// New returns an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Len returns the number of entries in the map.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.Pairs)
}

// Load returns the value stored for key. The ok result indicates whether the
// key was present.
func (m *OrderedMap[K, V]) Load(key K) (value V, ok bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.Pairs[i].Value, true
}

// Value returns the value stored for key, or the zero value if the key is
// not present. It is a convenience for callers that have already checked
// membership.
func (m *OrderedMap[K, V]) Value(key K) V {
	v, _ := m.Load(key)
	return v
}

// Store sets the value for key, appending a new entry if the key has not
// been seen before.
func (m *OrderedMap[K, V]) Store(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.Pairs[i].Value = value
		return
	}
	m.index[key] = len(m.Pairs)
	m.Pairs = append(m.Pairs, Pair[K, V]{Key: key, Value: value})
}

// OrderedRange calls f for each entry in insertion order. If f returns
// false, iteration stops.
func (m *OrderedMap[K, V]) OrderedRange(f func(key K, value V) bool) {
	for _, p := range m.Pairs {
		if !f(p.Key, p.Value) {
			return
		}
	}
}

// GobEncode encodes the entries as an ordered stream of key/value pairs.
func (m *OrderedMap[K, V]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	for _, p := range m.Pairs {
		if err := enc.Encode(p.Key); err != nil {
			return nil, err
		}
		if err := enc.Encode(&p.Value); err != nil {
			return nil, err
		}
	}

	if buf.Len() == 0 {
		return nil, nil
	}
	return buf.Bytes(), nil
}

// GobDecode decodes a stream produced by GobEncode, preserving order.
func (m *OrderedMap[K, V]) GobDecode(b []byte) error {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	dec := gob.NewDecoder(bytes.NewBuffer(b))
	for {
		var k K
		if err := dec.Decode(&k); err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return err
		}
		m.Store(k, v)
	}

	return nil
}
