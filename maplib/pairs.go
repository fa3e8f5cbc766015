package maplib

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// ToPairs lists the entries of m in iteration order.
func ToPairs[M ~map[K]V, K comparable, V any](m M) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}

// FromPairs builds a map from pairs; a repeated key keeps its last value.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	return maps.Keys(m)
}

func SortedKeys[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// FirstKey returns the key m's iteration starts at.
func FirstKey[M ~map[K]V, K comparable, V any](m M) (k K, err error) {
	for k = range m {
		return k, nil
	}
	return k, ErrEmptyMap
}
