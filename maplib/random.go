package maplib

import (
	"github.com/tuannh982/maplib/utils/random"
)

// RandomKey picks a key of m by advancing a random number of steps through
// its iteration. A nil src falls back to random.Default().
func RandomKey[M ~map[K]V, K comparable, V any](m M, src random.Source) (k K, err error) {
	if len(m) == 0 {
		return k, ErrEmptyMap
	}
	if src == nil {
		src = random.Default()
	}
	steps := src.Intn(len(m))
	for k = range m {
		if steps == 0 {
			break
		}
		steps--
	}
	return k, nil
}

// PopRandom removes a random entry from m and returns it.
func PopRandom[M ~map[K]V, K comparable, V any](m M, src random.Source) (Pair[K, V], error) {
	k, err := RandomKey(m, src)
	if err != nil {
		return Pair[K, V]{}, err
	}
	p := Pair[K, V]{Key: k, Value: m[k]}
	delete(m, k)
	logger.WithField("remaining", len(m)).Debug("popped random entry")
	return p, nil
}
