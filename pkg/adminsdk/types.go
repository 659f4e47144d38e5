package adminsdk

// AdminUser is the safe projection of a user record returned to admins.
// Password material never appears here.
type AdminUser struct {
	// ID is the unique identifier for the user
	ID string `json:"id"`

	// Name is the user's display name, null when not set
	Name *string `json:"name"`

	// Email is the user's login address
	Email string `json:"email"`

	// Role is either "ADMIN" or "USER"
	Role string `json:"role"`

	// CreatedAt is the creation timestamp (RFC3339 format)
	CreatedAt string `json:"createdAt"`
}

// InviteRequest asks the service to email an invitation to a new user.
type InviteRequest struct {
	// Email is the address to invite (required)
	Email string `json:"email"`

	// Name is the recipient's display name used in the mail greeting (optional)
	Name string `json:"name,omitempty"`
}

// InviteResponse is returned when the invitation was dispatched. The invite
// record itself stays server-side; callers only get the confirmation text.
type InviteResponse struct {
	// Message is the localized success message
	Message string `json:"message"`
}

// MessageResponse is the generic `{"message": ...}` body used for failures.
type MessageResponse struct {
	Message string `json:"message"`
}
