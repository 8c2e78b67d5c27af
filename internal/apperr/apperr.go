// Package apperr defines the closed set of failures the catalog can produce.
//
// Every kind implements Error; the unexported seal method keeps the set closed so
// callers can switch over Kind exhaustively.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindRepository
	KindValidation
	KindDerivation
)

func (k Kind) String() string {
	switch k {
	case KindRepository:
		return "repository"
	case KindValidation:
		return "validation"
	case KindDerivation:
		return "derivation"
	default:
		return "unknown"
	}
}

// Error is implemented only by the kinds declared in this package.
type Error interface {
	error
	Kind() Kind
	seal()
}

// RepositoryError wraps a storage failure. It aborts the whole request.
type RepositoryError struct {
	Op     string // e.g. "list products"
	Entity string
	Err    error
}

func Repository(op, entity string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Entity: entity, Err: err}
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %s %s: %v", e.Op, e.Entity, e.Err)
}
func (e *RepositoryError) Unwrap() error { return e.Err }
func (e *RepositoryError) Kind() Kind    { return KindRepository }
func (e *RepositoryError) seal()         {}

// ValidationError reports input that cannot be normalized to a default.
type ValidationError struct {
	Field  string
	Reason string
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}
func (e *ValidationError) Kind() Kind { return KindValidation }
func (e *ValidationError) seal()      {}

// DerivationWarning is record scoped: the record is still emitted with Fallback.
type DerivationWarning struct {
	ProductID string
	Field     string
	Fallback  string
}

func (w DerivationWarning) Error() string {
	return fmt.Sprintf("derivation: product %s: %s missing, used %q", w.ProductID, w.Field, w.Fallback)
}
func (w DerivationWarning) Kind() Kind { return KindDerivation }
func (w DerivationWarning) seal()      {}

// Classify returns the kind of the first catalog error in err's chain.
func Classify(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// Code is the machine readable code placed in failure envelopes.
func Code(err error) string {
	switch Classify(err) {
	case KindRepository:
		return "REPOSITORY_ERROR"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindDerivation:
		return "DERIVATION_WARNING"
	case KindUnknown:
		return "INTERNAL"
	}
	return "INTERNAL"
}

// PublicMessage is the only text about err a client ever sees.
func PublicMessage(err error, fallback string) string {
	switch Classify(err) {
	case KindValidation:
		var v *ValidationError
		errors.As(err, &v)
		return "Некорректный параметр: " + v.Field
	case KindRepository, KindDerivation, KindUnknown:
		return fallback
	}
	return fallback
}
