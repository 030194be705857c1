// Package ordermap implements a map that iterates its entries in key order,
// backed by a B-tree (github.com/google/btree) rather
// than a hash table plus a separately maintained sort.
package ordermap

import (
	"iter"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const defaultDegree = 32

type entry[K, V any] struct {
	key K
	val V
}

// Map is an ordered key-value map. The zero value is not usable; construct
// with New.
type Map[K, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
	len  int
}

// New constructs an empty Map, ordering keys with less (a strict
// less-than).
func New[K, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{
		tree: btree.NewG(defaultDegree, func(a, b entry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

// NewOrdered constructs an empty Map over a key type with a natural total
// order (any of golang.org/x/exp/constraints.Ordered's integer, float, or
// string types), without requiring the caller to write their own less
// function - the common case for keys that aren't a user-defined type with
// custom ordering rules.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

// Set inserts or replaces the value for key.
func (m *Map[K, V]) Set(key K, val V) {
	_, had := m.tree.ReplaceOrInsert(entry[K, V]{key: key, val: val})
	if !had {
		m.len++
	}
}

// Get returns the value stored for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree.Get(entry[K, V]{key: key})
	return e.val, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(entry[K, V]{key: key})
}

// Delete removes key, returning its value and whether it was present.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	e, ok := m.tree.Delete(entry[K, V]{key: key})
	if ok {
		m.len--
	}
	return e.val, ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.len }

// Min returns the smallest key and its value, and whether the Map is
// non-empty.
func (m *Map[K, V]) Min() (K, V, bool) {
	e, ok := m.tree.Min()
	return e.key, e.val, ok
}

// Max returns the largest key and its value, and whether the Map is
// non-empty.
func (m *Map[K, V]) Max() (K, V, bool) {
	e, ok := m.tree.Max()
	return e.key, e.val, ok
}

// All iterates every entry in ascending key order. The iteration stops
// early if the consumer's yield function returns false.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(e entry[K, V]) bool {
			return yield(e.key, e.val)
		})
	}
}

// Descend iterates every entry in descending key order.
func (m *Map[K, V]) Descend() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Descend(func(e entry[K, V]) bool {
			return yield(e.key, e.val)
		})
	}
}

// Range iterates entries with key >= from and key < to, in ascending
// order.
func (m *Map[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.AscendRange(entry[K, V]{key: from}, entry[K, V]{key: to}, func(e entry[K, V]) bool {
			return yield(e.key, e.val)
		})
	}
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.tree.Clear(false)
	m.len = 0
}

// Clone returns a structurally independent copy of the Map; mutating one
// does not affect the other, matching btree's copy-on-write Clone
// semantics.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone(), len: m.len}
}
