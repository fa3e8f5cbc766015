package maplib

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Addable is the set of types with a + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

type AddTarget int

const (
	AddKeysAndValues AddTarget = iota
	AddValues
)

func (t AddTarget) String() string {
	switch t {
	case AddKeysAndValues:
		return "keys and values"
	case AddValues:
		return "values"
	default:
		return fmt.Sprintf("AddTarget(%d)", int(t))
	}
}

func ParseAddTarget(s string) (AddTarget, error) {
	switch s {
	case "keys and values":
		return AddKeysAndValues, nil
	case "values":
		return AddValues, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAddTarget, s)
	}
}

// AddMaps applies + to the entries a and b share. With AddValues a shared
// key k maps to a[k]+b[k]; with AddKeysAndValues the entry is stored under
// k+k instead. Unless omitKeysNotShared is set, keys found in only one of
// the maps are copied as is, a's before b's. Combined entries are never
// overwritten by copied ones. Neither input is modified.
func AddMaps[M ~map[K]V, K Addable, V Addable](a, b M, target AddTarget, omitKeysNotShared bool) M {
	if target == AddValues {
		return addValues(a, b, omitKeysNotShared)
	}
	ab := make(M)
	for k, v := range a {
		if w, ok := b[k]; ok {
			ab[k+k] = v + w
		}
	}
	if !omitKeysNotShared {
		copyUnshared(ab, a, b)
		copyUnshared(ab, b, a)
	}
	return ab
}

// AddValuesMaps is AddMaps with AddValues for key types that have no +.
func AddValuesMaps[M ~map[K]V, K comparable, V Addable](a, b M, omitKeysNotShared bool) M {
	return addValues(a, b, omitKeysNotShared)
}

func addValues[M ~map[K]V, K comparable, V Addable](a, b M, omitKeysNotShared bool) M {
	ab := make(M, len(a))
	for k, v := range a {
		if w, ok := b[k]; ok {
			ab[k] = v + w
		}
	}
	if !omitKeysNotShared {
		copyUnshared(ab, a, b)
		copyUnshared(ab, b, a)
	}
	return ab
}

// copyUnshared copies entries of src whose key is missing from other,
// skipping keys dst already holds.
func copyUnshared[M ~map[K]V, K comparable, V any](dst, src, other M) {
	for k, v := range src {
		if _, shared := other[k]; shared {
			continue
		}
		if _, taken := dst[k]; taken {
			continue
		}
		dst[k] = v
	}
}
