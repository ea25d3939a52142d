package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscription is unique per email. Re-subscribing an inactive
// address reactivates the existing row instead of creating a duplicate.
type NewsletterSubscription struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name,omitempty"`
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}
