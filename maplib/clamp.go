package maplib

import "golang.org/x/exp/constraints"

type Numeric interface {
	constraints.Integer | constraints.Float
}

// SetNegativeValuesToZero sets every negative value of m to zero in place.
func SetNegativeValuesToZero[M ~map[K]V, K comparable, V Numeric](m M) {
	for k, v := range m {
		if v < 0 {
			m[k] = 0
		}
	}
}
