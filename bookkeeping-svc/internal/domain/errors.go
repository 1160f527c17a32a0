package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyReserved = errors.New("already reserved")
)
