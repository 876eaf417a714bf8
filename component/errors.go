package component

import "errors"

var (
	ErrNilEntity     = errors.New("physics: entity is nil")
	ErrInvalidSize   = errors.New("physics: invalid size")
	ErrInvalidVector = errors.New("physics: invalid vector")
	ErrInvalidDelta  = errors.New("physics: invalid frame delta")
)
