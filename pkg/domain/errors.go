package domain

import "errors"

// ErrMissingID is returned when an item is created or attached without an identifier.
var ErrMissingID = errors.New("item missing ID")

// ErrDuplicateID is returned when two items of one tree share an identifier.
var ErrDuplicateID = errors.New("duplicate item ID")

// ErrAlreadyAttached is returned when an item that already has a parent is attached again.
var ErrAlreadyAttached = errors.New("item already attached")
