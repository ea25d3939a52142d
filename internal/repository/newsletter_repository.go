package repository

import (
	"context"
	"fmt"
	"time"

	"sundar_marbles/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type NewsletterRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepo {
	return &NewsletterRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Upsert is the get-or-create rule guarded by the unique email key.
// A fresh email inserts an active row; a conflicting email reactivates
// the existing row in place, so the primary key never changes. An
// already-active subscription comes back unchanged.
func (r *NewsletterRepo) Upsert(ctx context.Context, email, name string) (models.NewsletterSubscription, error) {
	const op = "repository.newsletter_repository.Upsert"

	query, args, err := r.sb.Insert("newsletter_subscriptions").
		Columns("email", "name", "is_active").
		Values(email, name, true).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET is_active = TRUE,
			    unsubscribed_at = NULL
			RETURNING id, email, name, is_active, subscribed_at, unsubscribed_at`).
		ToSql()
	if err != nil {
		return models.NewsletterSubscription{}, fmt.Errorf("%s: %w", op, err)
	}

	var sub models.NewsletterSubscription
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Name,
		&sub.IsActive,
		&sub.SubscribedAt,
		&sub.UnsubscribedAt,
	)
	if err != nil {
		return models.NewsletterSubscription{}, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (r *NewsletterRepo) Unsubscribe(ctx context.Context, email string, at time.Time) (bool, error) {
	const op = "repository.newsletter_repository.Unsubscribe"

	query, args, err := r.sb.Update("newsletter_subscriptions").
		Set("is_active", false).
		Set("unsubscribed_at", at).
		Where(sq.Eq{"email": email, "is_active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}
