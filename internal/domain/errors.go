package domain

import "errors"

// Error is a domain error carrying a stable code. Adapters translate the
// code into a user-facing message; the message here is for logs.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Code extracts the domain error code from err, or "" if err carries none.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}

// Domain errors.
var (
	ErrEventNotFound    = newError("event_not_found", "event not found")
	ErrEventNotPending  = newError("event_not_pending", "event has already been decided")
	ErrClubNotFound     = newError("club_not_found", "club not found")
	ErrInvalidAction    = newError("invalid_action", "action must be approve or reject")
	ErrStoreUnavailable = newError("store_unavailable", "event store unavailable")
	ErrExpansionFailed  = newError("expansion_failed", "failed to materialize weekly occurrences")
)
