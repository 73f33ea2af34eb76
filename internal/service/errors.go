package service

import (
	"fmt"
)

type ErrLookupFailed struct {
	error
}

func NewErrLookupFailed(route string, err error) *ErrLookupFailed {
	return &ErrLookupFailed{fmt.Errorf("failed to fetch the table of route %s: %w", route, err)}
}

func (e *ErrLookupFailed) Unwrap() error {
	return e.error
}
