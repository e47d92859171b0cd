package entities

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrPhoneRequired = errors.New("phone is required")
)
