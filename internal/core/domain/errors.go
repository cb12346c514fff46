package domain

import (
	"errors"
	"fmt"
)

// ValidationError signals malformed or out-of-range input, such as
// non-positive budgets or an unknown occalizer mode. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InvalidTransitionError signals a lifecycle guard failure. It names the
// current and requested status so callers can render a meaningful
// message; it is never coerced into a valid transition.
type InvalidTransitionError struct {
	CampaignID string
	Current    CampaignStatus
	Requested  CampaignStatus
	// Reason is set when the transition edge exists but a guard blocked
	// it (e.g. outstanding blocking audit errors).
	Reason string
}

func (e InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("campaign %s: cannot transition from %s to %s", e.CampaignID, e.Current, e.Requested)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// DependencyError wraps a failure of the external store or another
// required collaborator. It is the only error class worth alerting on;
// the caller may retry, the core does not.
type DependencyError struct {
	Op  string
	Err error
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("%s: dependency unavailable: %v", e.Op, e.Err)
}

func (e DependencyError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var it InvalidTransitionError
	return errors.As(err, &it)
}

// IsDependency reports whether err is a DependencyError.
func IsDependency(err error) bool {
	var de DependencyError
	return errors.As(err, &de)
}
