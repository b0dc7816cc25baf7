package entity

import (
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSchemaMismatch  = errors.New("schema mismatch")
	ErrWrongAmount     = errors.New("wrong amount")
	ErrUnauthenticated = errors.New("unauthenticated")
)
