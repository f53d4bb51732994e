package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"clubboard/internal/domain"
	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

var _ output.ClubRepository = (*ClubRepository)(nil)

type ClubRepository struct {
	pool *pgxpool.Pool
}

func NewClubRepository(pool *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

const clubColumns = `id, name, email, discord_guild_id, discord_channel_id, created_at, updated_at`

func (r *ClubRepository) Create(ctx context.Context, club *entities.Club) error {
	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clubs (name, email) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		club.Name, textOrNull(club.Email)).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create club: %w", err)
	}
	club.ID = uuid.UUID(id.Bytes)
	club.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	club.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Club, error) {
	return r.findOne(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = $1`, uuidParam(id))
}

func (r *ClubRepository) FindByName(ctx context.Context, name string) (*entities.Club, error) {
	return r.findOne(ctx, `SELECT `+clubColumns+` FROM clubs WHERE name = $1`, name)
}

func (r *ClubRepository) findOne(ctx context.Context, sql string, arg any) (*entities.Club, error) {
	var (
		id                 pgtype.UUID
		name               string
		email              pgtype.Text
		guildID, channelID pgtype.Text
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, sql, arg).Scan(&id, &name, &email, &guildID, &channelID, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	return clubToDomain(id, name, email, guildID, channelID, createdAt, updatedAt), nil
}

func (r *ClubRepository) SaveDiscordTarget(ctx context.Context, id uuid.UUID, guildID, channelID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clubs SET discord_guild_id = $2, discord_channel_id = $3, updated_at = now() WHERE id = $1`,
		uuidParam(id), guildID, channelID)
	if err != nil {
		return fmt.Errorf("save discord target: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClubNotFound
	}
	return nil
}
