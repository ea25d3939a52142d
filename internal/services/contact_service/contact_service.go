package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/metrics"
	"sundar_marbles/internal/repository"
	"sundar_marbles/internal/transport/http/dto/request"

	"github.com/google/uuid"
)

// Notifier is the background email hand-off used after intake.
type Notifier interface {
	Enqueue(subject, body string)
}

type ContactService struct {
	log            *slog.Logger
	repo           repository.ContactRepository
	notifier       Notifier
	whatsappNumber string
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository, notifier Notifier, whatsappNumber string) *ContactService {
	return &ContactService{
		log:            log,
		repo:           repo,
		notifier:       notifier,
		whatsappNumber: whatsappNumber,
	}
}

// SubmitMessage persists a public contact form submission. Status and
// priority are always the intake defaults, whatever the client sent.
// The operator notification is queued after the row is safely stored
// and can never fail the submission.
func (s *ContactService) SubmitMessage(ctx context.Context, req request.ContactMessageRequest) (models.ContactMessage, error) {
	const op = "contact_service.SubmitMessage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("new contact message", slog.String("subject", req.Subject))

	msg := models.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		Status:   models.StatusNew,
		Priority: models.PriorityMedium,
	}

	created, err := s.repo.SaveMessage(ctx, msg)
	if err != nil {
		log.Error("failed to save contact message", sl.Err(err))
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.ContactMessagesTotal.Inc()

	s.notifier.Enqueue(
		fmt.Sprintf("New Contact Message: %s", created.Subject),
		notificationBody(created),
	)

	log.Info("contact message saved", slog.String("message_id", created.ID.String()))
	return created, nil
}

func notificationBody(m models.ContactMessage) string {
	return fmt.Sprintf(
		"New contact message received:\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\nMessage:\n%s\n\nReceived at: %s\n",
		m.Name, m.Email, m.Phone, m.Subject, m.Message,
		m.CreatedAt.Format(time.RFC3339),
	)
}

// ListMessages is the staff moderation listing.
func (s *ContactService) ListMessages(ctx context.Context, statusFilter string, page, perPage int) ([]models.ContactMessage, int, error) {
	const op = "contact_service.ListMessages"

	messages, total, err := s.repo.ListMessages(ctx, statusFilter, page, perPage)
	if err != nil {
		s.log.Error("failed to list contact messages", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return messages, total, nil
}

// MarkAsRead promotes a new message to read. Calling it again is a
// no-op: the read timestamp keeps its first-set value and the status
// never regresses.
func (s *ContactService) MarkAsRead(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	const op = "contact_service.MarkAsRead"
	log := s.log.With(
		slog.String("op", op),
		slog.String("message_id", id.String()),
	)

	promoted, err := s.repo.MarkAsRead(ctx, id, time.Now().UTC())
	if err != nil {
		log.Error("failed to mark message as read", sl.Err(err))
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	// Either the message is already past "new" or the id is unknown;
	// the lookup below distinguishes the two.
	if !promoted {
		log.Debug("message not in new state, nothing to do")
	}

	msg, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// MarkAsReplied overwrites the status from any state.
func (s *ContactService) MarkAsReplied(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	return s.setStatus(ctx, id, models.StatusReplied)
}

// MarkAsClosed overwrites the status from any state. Closed is not a
// terminal state: staff may reopen by marking read or replied later.
func (s *ContactService) MarkAsClosed(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	return s.setStatus(ctx, id, models.StatusClosed)
}

func (s *ContactService) setStatus(ctx context.Context, id uuid.UUID, status models.MessageStatus) (models.ContactMessage, error) {
	const op = "contact_service.setStatus"
	log := s.log.With(
		slog.String("op", op),
		slog.String("message_id", id.String()),
		slog.String("status", string(status)),
	)

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		log.Error("failed to set message status", sl.Err(err))
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("message status updated")
	return msg, nil
}

// UpdateModeration applies staff edits to notes and priority.
func (s *ContactService) UpdateModeration(ctx context.Context, id uuid.UUID, req request.ModerationUpdateRequest) (models.ContactMessage, error) {
	const op = "contact_service.UpdateModeration"
	log := s.log.With(
		slog.String("op", op),
		slog.String("message_id", id.String()),
	)

	updates := make(map[string]interface{})
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	if req.Priority != nil {
		priority := models.MessagePriority(*req.Priority)
		if !priority.Valid() {
			return models.ContactMessage{}, fmt.Errorf("%s: invalid priority %q", op, *req.Priority)
		}
		updates["priority"] = priority
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateModeration(ctx, id, updates); err != nil {
			log.Error("failed to update moderation fields", sl.Err(err))
			return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	msg, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// GenerateWhatsAppLink builds the wa.me hand-off link for a message and
// records that the hand-off happened. The link is handed to a human
// operator; nothing is delivered here.
func (s *ContactService) GenerateWhatsAppLink(ctx context.Context, id uuid.UUID) (string, error) {
	const op = "contact_service.GenerateWhatsAppLink"
	log := s.log.With(
		slog.String("op", op),
		slog.String("message_id", id.String()),
	)

	msg, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		log.Warn("whatsapp hand-off for unknown message", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	url := msg.WhatsAppURL(s.whatsappNumber)

	if err := s.repo.MarkWhatsAppSent(ctx, id, time.Now().UTC()); err != nil {
		log.Error("failed to record whatsapp hand-off", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("whatsapp hand-off link generated")
	return url, nil
}

// ListContactInfo returns the active company profile records.
func (s *ContactService) ListContactInfo(ctx context.Context) ([]models.ContactInfo, error) {
	const op = "contact_service.ListContactInfo"

	infos, err := s.repo.ListActiveContactInfo(ctx)
	if err != nil {
		s.log.Error("failed to list contact info", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return infos, nil
}
