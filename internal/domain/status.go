package domain

// Event moderation statuses. An event is created pending and is decided
// exactly once: pending → approved or pending → rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Moderation actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// StatusForAction maps a moderation action to the resulting status.
func StatusForAction(action string) (string, error) {
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	default:
		return "", ErrInvalidAction
	}
}
