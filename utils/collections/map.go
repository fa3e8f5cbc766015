package collections

import (
	"github.com/tuannh982/maplib/maplib"
	"github.com/tuannh982/maplib/utils/random"
)

type Map[K comparable, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
	Pairs() []maplib.Pair[K, V]
	FirstKey() (K, error)
	RandomKey(src random.Source) (K, error)
	PopRandom(src random.Source) (maplib.Pair[K, V], error)
	// Raw returns the backing map itself, not a copy. Changes made to it
	// are visible through the Map and bypass the Put existence check.
	Raw() map[K]V
}
