package types

import "errors"

var (
	ErrInvalidSortDirection = errors.New("invalid sort direction: use asc or desc")
	ErrInvalidDate          = errors.New("invalid date: use the YYYY-MM-DD format")
	ErrInvalidCustomerID    = errors.New("customer id must be a positive integer")
)
