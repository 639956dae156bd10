package models

import "time"

// Invitation is an invite code for registration when invite-only mode
// is enabled
type Invitation struct {
	ID          int64
	Code        string
	Email       string
	InvitedBy   int64
	InviterName string
	CreatedAt   time.Time
	UsedAt      *time.Time
	UsedBy      *int64
	ExpiresAt   time.Time
}

// IsUsed reports whether the invitation has been redeemed
func (i *Invitation) IsUsed() bool {
	return i.UsedAt != nil
}

// IsExpired reports whether the invitation has expired
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
