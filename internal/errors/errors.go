package errors

import "fmt"

// EntryNotFoundErr is raised when referenced entry doesn't exist
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(entity, id string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: fmt.Sprintf("%s %s not found", entity, id)}
}

// ConflictErr is raised when unique constraint of the store is violated
type ConflictErr struct {
	message string
	cause   error
}

func (e *ConflictErr) Error() string {
	return e.message
}

func (e *ConflictErr) Unwrap() error {
	return e.cause
}

// NewConflictErr builds ConflictErr
func NewConflictErr(msg string, cause error) *ConflictErr {
	return &ConflictErr{message: msg, cause: cause}
}
