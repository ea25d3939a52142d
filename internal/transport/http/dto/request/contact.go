package request

// ContactMessageRequest is the public contact form payload. Status and
// priority are intentionally absent: intake defaults are enforced
// server-side.
type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// ModerationUpdateRequest carries staff edits to a message. Nil fields
// are left untouched.
type ModerationUpdateRequest struct {
	AdminNotes *string `json:"admin_notes" validate:"omitempty,max=2000"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}
