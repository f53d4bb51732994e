package entities

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistSignup is a pre-launch mailing list entry.
type WaitlistSignup struct {
	ID          uuid.UUID
	Email       string
	Name        string // optional
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	UserAgent   string
	IP          string
	CreatedAt   time.Time
}
