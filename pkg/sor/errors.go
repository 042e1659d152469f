package sor

import "errors"

// Sentinel errors returned by the generator
var (
	ErrUnsupportedType = errors.New("unsupported column type")
	ErrInvalidRowCount = errors.New("invalid row count")
	ErrWriteFailed     = errors.New("failed to write row")
)
