package domain

import (
	"errors"
	"fmt"
)

// Matchers for errors.Is. The concrete types below carry the details.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateCode      = errors.New("product code already exists")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports the first registration rule a product broke.
// Message is meant to be shown to the user verbatim.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DuplicateCodeError is returned by a uniqueness-checked registration when
// another product already uses the code.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("product code already exists: %s", e.Code)
}
func (e *DuplicateCodeError) Is(target error) bool { return target == ErrDuplicateCode }

// MalformedRecordError is returned when a persisted row holds a field that
// fails type parsing. Line carries the offending record content.
type MalformedRecordError struct {
	Line  string
	Field string
	Cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record (field %s): %v in line %q", e.Field, e.Cause, e.Line)
}
func (e *MalformedRecordError) Unwrap() error        { return e.Cause }
func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// StorageError wraps a filesystem failure on load or save.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.Path, e.Err)
}
func (e *StorageError) Unwrap() error        { return e.Err }
func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }
