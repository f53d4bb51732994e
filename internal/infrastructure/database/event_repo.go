package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"clubboard/internal/domain"
	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const insertEventSQL = `INSERT INTO events
	(title, club_name, description, location, contact_email, image_url, start_time, status, repeat_weekly, repeat_until, template_event_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, created_at`

const insertOccurrenceSQL = `INSERT INTO events
	(title, club_name, description, location, contact_email, image_url, start_time, status, repeat_weekly, repeat_until, template_event_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, insertEventSQL,
		event.Title,
		event.ClubName,
		textOrNull(event.Description),
		textOrNull(event.Location),
		textOrNull(event.ContactEmail),
		textOrNull(event.ImageURL),
		event.StartTime,
		event.Status,
		event.RepeatWeekly,
		dateOrNull(event.RepeatUntil),
		uuidPtrOrNull(event.TemplateEventID),
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uuid.UUID(id.Bytes)
	event.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, uuidParam(id))
	event, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindPending(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE status = $1 ORDER BY created_at DESC`,
		domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending events: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) FindApproved(ctx context.Context, window output.ApprovedWindow) ([]entities.Event, error) {
	sql := `SELECT ` + eventColumns + ` FROM events WHERE status = $1`
	args := []any{domain.StatusApproved}
	if !window.From.IsZero() {
		args = append(args, window.From)
		sql += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if !window.To.IsZero() {
		args = append(args, window.To)
		sql += fmt.Sprintf(" AND start_time < $%d", len(args))
	}
	if window.ClubName != "" {
		args = append(args, window.ClubName)
		sql += fmt.Sprintf(" AND club_name = $%d", len(args))
	}
	if window.Newest {
		sql += " ORDER BY start_time DESC"
	} else {
		sql += " ORDER BY start_time ASC"
	}
	if window.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", window.Limit)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list approved events: %w", err)
	}
	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	defer rows.Close()
	out := []entities.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return out, nil
}

// Compare-and-swap on the status column: only a still-pending row moves, so
// a concurrent second decision loses instead of overwriting the first.
const decideSQL = `UPDATE events SET status = $2 WHERE id = $1 AND status = $3`

func (r *EventRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, decideSQL, uuidParam(id), status, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotPending
	}
	return nil
}

// ApproveWithOccurrences approves the template row and inserts its weekly
// occurrences in one transaction, so a failed insert leaves no
// half-approved series behind.
func (r *EventRepository) ApproveWithOccurrences(ctx context.Context, id uuid.UUID, occurrences []entities.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin approve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, decideSQL, uuidParam(id), domain.StatusApproved, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("approve template event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotPending
	}

	if len(occurrences) > 0 {
		batch := &pgx.Batch{}
		for i := range occurrences {
			occ := &occurrences[i]
			batch.Queue(insertOccurrenceSQL,
				occ.Title,
				occ.ClubName,
				textOrNull(occ.Description),
				textOrNull(occ.Location),
				textOrNull(occ.ContactEmail),
				textOrNull(occ.ImageURL),
				occ.StartTime,
				occ.Status,
				occ.RepeatWeekly,
				dateOrNull(occ.RepeatUntil),
				uuidPtrOrNull(occ.TemplateEventID),
			)
		}
		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for range occurrences {
			if _, err := br.Exec(); err != nil {
				batchErr = err
				break
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = err
		}
		if batchErr != nil {
			log.Printf("❌ Insertion des occurrences échouée (event=%s): %v", id, batchErr)
			return domain.ErrExpansionFailed
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("❌ Commit de l'approbation échoué (event=%s): %v", id, err)
		return domain.ErrExpansionFailed
	}
	return nil
}
