package collections

import (
	"golang.org/x/exp/maps"

	"github.com/tuannh982/maplib/maplib"
	"github.com/tuannh982/maplib/utils/random"
)

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

// NewHashMapFrom wraps a copy of m.
func NewHashMapFrom[M ~map[K]V, K comparable, V any](m M) Map[K, V] {
	entries := make(map[K]V, len(m))
	maps.Copy(entries, m)
	return &hashMap[K, V]{
		entries: entries,
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() []K {
	return maplib.Keys(m.entries)
}

func (m *hashMap[K, V]) Values() []V {
	return maps.Values(m.entries)
}

func (m *hashMap[K, V]) Pairs() []maplib.Pair[K, V] {
	return maplib.ToPairs(m.entries)
}

func (m *hashMap[K, V]) FirstKey() (K, error) {
	return maplib.FirstKey(m.entries)
}

func (m *hashMap[K, V]) RandomKey(src random.Source) (K, error) {
	return maplib.RandomKey(m.entries, src)
}

func (m *hashMap[K, V]) PopRandom(src random.Source) (maplib.Pair[K, V], error) {
	return maplib.PopRandom(m.entries, src)
}

func (m *hashMap[K, V]) Raw() map[K]V {
	return m.entries
}
