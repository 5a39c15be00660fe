package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQty      = errors.New("qty must be at least 1")
)
