package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrInvalidState     = errors.New("invalid state")
	ErrForbidden        = errors.New("forbidden")
	ErrSelfTrade        = errors.New("self trade forbidden")
	ErrNotBargainable   = errors.New("item is not bargainable")
	ErrInvalidOffer     = errors.New("invalid offer")
	ErrItemUnavailable  = errors.New("item unavailable")
	ErrAlreadyReviewed  = errors.New("already reviewed")
	ErrValidation       = errors.New("validation error")
)

// RentalDaysExceededError возвращается при попытке арендовать товар на срок больше допустимого.
type RentalDaysExceededError struct {
	Requested int
	Max       int
}

func (e *RentalDaysExceededError) Error() string {
	return fmt.Sprintf("rental days %d exceed allowed maximum %d", e.Requested, e.Max)
}

func NewRentalDaysExceededError(requested, maxDays int) error {
	return &RentalDaysExceededError{Requested: requested, Max: maxDays}
}
