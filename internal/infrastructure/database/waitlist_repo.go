package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

var _ output.WaitlistRepository = (*WaitlistRepository)(nil)

type WaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{pool: pool}
}

func (r *WaitlistRepository) Create(ctx context.Context, signup *entities.WaitlistSignup) error {
	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`INSERT INTO waitlist_signups (email, name, utm_source, utm_medium, utm_campaign, user_agent, ip)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		signup.Email,
		textOrNull(signup.Name),
		textOrNull(signup.UTMSource),
		textOrNull(signup.UTMMedium),
		textOrNull(signup.UTMCampaign),
		textOrNull(signup.UserAgent),
		textOrNull(signup.IP)).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create waitlist signup: %w", err)
	}
	signup.ID = uuid.UUID(id.Bytes)
	signup.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}
