package maplib

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/maplib/utils/strutil"
)

// KeysStartingWith returns the entries of m whose key begins with prefix.
func KeysStartingWith[M ~map[K]V, K ~string, V any](m M, prefix K) M {
	ret := make(M)
	for k, v := range m {
		if strutil.StartsWith(k, prefix) {
			ret[k] = v
		}
	}
	return ret
}

// EraseFromKeys removes every occurrence of target from the keys of m.
// Keys are processed in ascending order, so when two keys collapse into
// one the value of the greater original key is kept.
func EraseFromKeys[M ~map[K]V, K ~string, V any](m M, target K) M {
	ret := make(M, len(m))
	from := make(map[K]K, len(m))
	for _, k := range sortedStringKeys(m) {
		nk := strutil.ReplaceSubstr(k, target, "")
		if prev, ok := from[nk]; ok {
			logger.WithFields(log.Fields{
				"key":      string(nk),
				"replaced": string(prev),
				"by":       string(k),
			}).Debug("erased keys collide")
		}
		from[nk] = k
		ret[nk] = m[k]
	}
	return ret
}

// EraseFromKeysStrict is EraseFromKeys failing with ErrKeyCollision
// instead of overwriting.
func EraseFromKeysStrict[M ~map[K]V, K ~string, V any](m M, target K) (M, error) {
	ret := make(M, len(m))
	from := make(map[K]K, len(m))
	for _, k := range sortedStringKeys(m) {
		nk := strutil.ReplaceSubstr(k, target, "")
		if prev, ok := from[nk]; ok {
			var zero M
			return zero, fmt.Errorf("%w: %q and %q both become %q", ErrKeyCollision, prev, k, nk)
		}
		from[nk] = k
		ret[nk] = m[k]
	}
	return ret, nil
}

func sortedStringKeys[M ~map[K]V, K ~string, V any](m M) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
