package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/repository"
)

type NewsletterService struct {
	log  *slog.Logger
	repo repository.NewsletterRepository
}

func NewNewsletterService(log *slog.Logger, repo repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{log: log, repo: repo}
}

// Subscribe creates the subscription, reactivates an inactive one, or
// does nothing for an already-active address. All three branches
// succeed identically from the caller's point of view.
func (s *NewsletterService) Subscribe(ctx context.Context, email, name string) (models.NewsletterSubscription, error) {
	const op = "newsletter_service.Subscribe"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	sub, err := s.repo.Upsert(ctx, email, name)
	if err != nil {
		log.Error("failed to subscribe", sl.Err(err))
		return models.NewsletterSubscription{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("newsletter subscription active", slog.String("subscription_id", sub.ID.String()))
	return sub, nil
}

// Unsubscribe deactivates an active subscription. Unknown or already
// inactive addresses are acknowledged without error.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	const op = "newsletter_service.Unsubscribe"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	deactivated, err := s.repo.Unsubscribe(ctx, email, time.Now().UTC())
	if err != nil {
		log.Error("failed to unsubscribe", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if deactivated {
		log.Info("newsletter subscription deactivated")
	}

	return nil
}
