package collections

import "errors"

var (
	ErrValueExisted    = errors.New("collections: value existed")
	ErrValueNotExisted = errors.New("collections: value not existed")
)
