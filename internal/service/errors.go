package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrOutOfStock = errors.New("out of stock")

	// ErrItemNotFound narrows ErrNotFound to a line missing from an
	// existing cart; errors.Is(err, ErrNotFound) still holds.
	ErrItemNotFound = fmt.Errorf("item not found in cart: %w", ErrNotFound)
)
