package models

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	StatusNew     MessageStatus = "new"
	StatusRead    MessageStatus = "read"
	StatusReplied MessageStatus = "replied"
	StatusClosed  MessageStatus = "closed"
)

type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityMedium MessagePriority = "medium"
	PriorityHigh   MessagePriority = "high"
	PriorityUrgent MessagePriority = "urgent"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusClosed:
		return true
	}
	return false
}

func (p MessagePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ContactMessage is a contact form submission plus the staff-side
// moderation fields.
type ContactMessage struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone,omitempty"`
	Subject  string          `json:"subject"`
	Message  string          `json:"message"`
	Status   MessageStatus   `json:"status"`
	Priority MessagePriority `json:"priority"`

	WhatsAppSent   bool       `json:"whatsapp_sent"`
	WhatsAppSentAt *time.Time `json:"whatsapp_sent_at,omitempty"`

	AdminNotes string `json:"admin_notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

// WhatsAppURL builds the wa.me deep link with the message summary
// pre-filled. It only produces the link; nothing is delivered.
func (m *ContactMessage) WhatsAppURL(number string) string {
	text := fmt.Sprintf(
		"New Contact Message\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\nMessage:\n%s",
		m.Name, m.Email, m.Phone, m.Subject, m.Message,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// ContactInfo is the public company profile shown on the contact page.
type ContactInfo struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Country     string    `json:"country"`

	PrimaryPhone   string `json:"primary_phone"`
	SecondaryPhone string `json:"secondary_phone,omitempty"`
	WhatsAppNumber string `json:"whatsapp_number,omitempty"`
	Email          string `json:"email"`
	Website        string `json:"website,omitempty"`

	BusinessHours string `json:"business_hours,omitempty"`

	FacebookURL  string `json:"facebook_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	YoutubeURL   string `json:"youtube_url,omitempty"`

	IsActive  bool      `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
