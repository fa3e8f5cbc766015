package maplib

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type UniqueKeyAlgorithm int

const (
	// IntegerConcatenation appends 0, 1, 2, ... to the key until it is free.
	IntegerConcatenation UniqueKeyAlgorithm = iota
)

func (a UniqueKeyAlgorithm) String() string {
	if a == IntegerConcatenation {
		return "integer concatenation"
	}
	return fmt.Sprintf("UniqueKeyAlgorithm(%d)", int(a))
}

// CreateUniqueKey returns a key not present in m, derived from key. m is
// not modified.
func CreateUniqueKey[M ~map[K]V, K ~string, V any](m M, key K, algorithm UniqueKeyAlgorithm) (K, error) {
	switch algorithm {
	case IntegerConcatenation:
		if _, ok := m[key]; !ok {
			return key, nil
		}
		for i := 0; ; i++ {
			candidate := key + K(strconv.Itoa(i))
			if _, ok := m[candidate]; !ok {
				logger.WithFields(log.Fields{
					"key":    string(key),
					"unique": string(candidate),
				}).Debug("key taken, suffixed")
				return candidate, nil
			}
		}
	default:
		return key, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algorithm)
	}
}
