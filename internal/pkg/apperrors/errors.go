// Package apperrors defines the typed failures surfaced by the core.
// Each error carries a stable machine-readable kind; the HTTP boundary
// maps kinds to status codes and never retries on behalf of the caller.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable machine-readable error category
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindValidation        Kind = "VALIDATION"
	KindRole              Kind = "ROLE"
	KindStateConflict     Kind = "STATE_CONFLICT"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindPolicyViolation   Kind = "POLICY_VIOLATION"
	KindAccessDenied      Kind = "ACCESS_DENIED"
)

// NotFoundError indicates an absent offer, ride, user or bid
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// Kind returns the stable error category
func (e NotFoundError) Kind() Kind { return KindNotFound }

// ValidationError indicates malformed input or a mismatched actor
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }
func (e ValidationError) Kind() Kind    { return KindValidation }

// RoleError indicates the actor lacks the required role
type RoleError struct {
	ActorID  string
	Required string
}

func (e RoleError) Error() string {
	return fmt.Sprintf("actor %s does not hold the %s role", e.ActorID, e.Required)
}
func (e RoleError) Kind() Kind { return KindRole }

// StateConflictError indicates the operation is not valid for the current state
type StateConflictError struct {
	Current string
	Op      string
}

func (e StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s in state %s", e.Op, e.Current)
}
func (e StateConflictError) Kind() Kind { return KindStateConflict }

// InvalidTransitionError indicates a ride state adjacency violation
type InvalidTransitionError struct {
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}
func (e InvalidTransitionError) Kind() Kind { return KindInvalidTransition }

// PolicyViolationError indicates a passenger attempted a driver-only or
// post-pickup-restricted action
type PolicyViolationError struct {
	Msg string
}

func (e PolicyViolationError) Error() string { return e.Msg }
func (e PolicyViolationError) Kind() Kind    { return KindPolicyViolation }

// AccessDeniedError indicates the actor is not a party to the resource
type AccessDeniedError struct {
	Msg string
}

func (e AccessDeniedError) Error() string { return e.Msg }
func (e AccessDeniedError) Kind() Kind    { return KindAccessDenied }

// kinder is satisfied by every typed error above
type kinder interface {
	Kind() Kind
}

// KindOf extracts the stable kind from an error chain, or "" if untyped
func KindOf(err error) Kind {
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// StatusCode maps a typed error to its HTTP status at the boundary layer
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindRole, KindAccessDenied:
		return http.StatusForbidden
	case KindStateConflict, KindInvalidTransition:
		return http.StatusConflict
	case KindPolicyViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
