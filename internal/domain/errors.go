package domain

import "errors"

var (
	ErrInvalidSize          = errors.New("invalid size for product")
	ErrInvalidQuantity      = errors.New("quantity cannot be negative")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrIllegalTransition    = errors.New("illegal order status transition")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrNotFound             = errors.New("not found")
)
