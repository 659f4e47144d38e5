package domain

import "time"

type Invite struct {
	ID        string
	TokenHash string // sha256 fingerprint of the registration token
	Email     string
	Name      string // Can be empty when the inviter did not provide one
	CreatedBy string
	ExpiresAt time.Time
	Used      bool
	UsedBy    string // Can be empty string if not yet used
	CreatedAt time.Time
	UpdatedAt time.Time
}
