package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var messageColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"subject",
	"message",
	"status",
	"priority",
	"whatsapp_sent",
	"whatsapp_sent_at",
	"admin_notes",
	"created_at",
	"updated_at",
	"read_at",
}

func scanMessage(row pgx.Row) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Subject,
		&m.Message,
		&m.Status,
		&m.Priority,
		&m.WhatsAppSent,
		&m.WhatsAppSentAt,
		&m.AdminNotes,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.ReadAt,
	)
	return m, err
}

func (r *ContactRepo) SaveMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	const op = "repository.contact_repository.SaveMessage"

	query, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "phone", "subject", "message", "status", "priority").
		Values(msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.Status, msg.Priority).
		Suffix("RETURNING " + joinColumns(messageColumns)).
		ToSql()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *ContactRepo) GetMessageByID(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	const op = "repository.contact_repository.GetMessageByID"

	query, args, err := r.sb.Select(messageColumns...).
		From("contact_messages").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	m, err := scanMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ContactMessage{}, fmt.Errorf("%s: %w", op, storage.ErrMessageNotFound)
		}
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (r *ContactRepo) ListMessages(ctx context.Context, statusFilter string, page, perPage int) ([]models.ContactMessage, int, error) {
	const op = "repository.contact_repository.ListMessages"

	page, perPage = NormalizePage(page, perPage)

	queryBuilder := r.sb.Select(messageColumns...).From("contact_messages")
	countBuilder := r.sb.Select("COUNT(*)").From("contact_messages")

	switch statusFilter {
	case "", "all":
	case "new", "read", "replied", "closed":
		queryBuilder = queryBuilder.Where(sq.Eq{"status": statusFilter})
		countBuilder = countBuilder.Where(sq.Eq{"status": statusFilter})
	default:
		return nil, 0, fmt.Errorf("%s: %w %q", op, storage.ErrInvalidStatusFilter, statusFilter)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := queryBuilder.
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return messages, total, nil
}

// MarkAsRead promotes a message from new to read and stamps read_at once.
// The status guard in the WHERE clause makes repeated calls no-ops: the
// first call wins, later ones return false without touching read_at.
func (r *ContactRepo) MarkAsRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error) {
	const op = "repository.contact_repository.MarkAsRead"

	query, args, err := r.sb.Update("contact_messages").
		Set("status", models.StatusRead).
		Set("read_at", readAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": models.StatusNew}).
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

func (r *ContactRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.MessageStatus) error {
	const op = "repository.contact_repository.SetStatus"

	query, args, err := r.sb.Update("contact_messages").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrMessageNotFound)
	}

	return nil
}

func (r *ContactRepo) UpdateModeration(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.contact_repository.UpdateModeration"

	builder := r.sb.Update("contact_messages")
	for col, val := range updates {
		builder = builder.Set(col, val)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrMessageNotFound)
	}

	return nil
}

func (r *ContactRepo) MarkWhatsAppSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	const op = "repository.contact_repository.MarkWhatsAppSent"

	query, args, err := r.sb.Update("contact_messages").
		Set("whatsapp_sent", true).
		Set("whatsapp_sent_at", sentAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrMessageNotFound)
	}

	return nil
}

func (r *ContactRepo) ListActiveContactInfo(ctx context.Context) ([]models.ContactInfo, error) {
	const op = "repository.contact_repository.ListActiveContactInfo"

	query, args, err := r.sb.Select(
		"id",
		"company_name",
		"address",
		"city",
		"postal_code",
		"country",
		"primary_phone",
		"secondary_phone",
		"whatsapp_number",
		"email",
		"website",
		"business_hours",
		"facebook_url",
		"instagram_url",
		"youtube_url",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("contact_info").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var infos []models.ContactInfo
	for rows.Next() {
		var info models.ContactInfo
		err := rows.Scan(
			&info.ID,
			&info.CompanyName,
			&info.Address,
			&info.City,
			&info.PostalCode,
			&info.Country,
			&info.PrimaryPhone,
			&info.SecondaryPhone,
			&info.WhatsAppNumber,
			&info.Email,
			&info.Website,
			&info.BusinessHours,
			&info.FacebookURL,
			&info.InstagramURL,
			&info.YoutubeURL,
			&info.IsActive,
			&info.CreatedAt,
			&info.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return infos, nil
}
