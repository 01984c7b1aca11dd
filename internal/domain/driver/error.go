package driver

import "errors"

var (
	ErrNotFound     = errors.New("driver not found")
	ErrInvalidInput = errors.New("identifier and secret are required")
)
