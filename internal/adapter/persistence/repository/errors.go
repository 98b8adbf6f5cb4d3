package repository

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedItem         = errors.New("malformed dynamodb item")
	ErrProviderNotFound      = errors.New("provider not found")
	ErrDebtNotFound          = errors.New("debt not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAlreadyDeleted = errors.New("payment already deleted")
	ErrPaymentDeleted        = errors.New("payment is deleted")
	ErrConcurrentUpdate      = errors.New("item changed concurrently")
)

// MalformedItemError reports a stored item that failed validation at the
// parse boundary. It matches ErrMalformedItem with errors.Is.
type MalformedItemError struct {
	Table  string
	ID     string
	Field  string
	Reason string
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("%s: table=%s id=%s field=%s: %s", ErrMalformedItem, e.Table, e.ID, e.Field, e.Reason)
}

func (e *MalformedItemError) Unwrap() error {
	return ErrMalformedItem
}

func malformed(table string, id int64, field, reason string) error {
	return &MalformedItemError{Table: table, ID: fmt.Sprint(id), Field: field, Reason: reason}
}
