package maplib

import "errors"

var (
	ErrEmptyMap         = errors.New("map is empty")
	ErrKeyCollision     = errors.New("key collision")
	ErrUnknownAlgorithm = errors.New("unknown unique key algorithm")
	ErrUnknownAddTarget = errors.New("unknown add target")
)
