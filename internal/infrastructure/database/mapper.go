package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"clubboard/internal/domain/entities"
)

// Optional text columns are stored as NULL, never as empty strings.
func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func textValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// repeat_until is date-granular; zero time means unset.
func dateOrNull(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: !t.IsZero()}
}

func dateValue(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

func uuidParam(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func uuidPtrOrNull(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// eventColumns matches the scan order of scanEvent.
const eventColumns = `id, title, club_name, description, location, contact_email, image_url,
	start_time, status, repeat_weekly, repeat_until, template_event_id, created_at`

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e           entities.Event
		id          pgtype.UUID
		description pgtype.Text
		location    pgtype.Text
		email       pgtype.Text
		imageURL    pgtype.Text
		startTime   pgtype.Timestamptz
		repeatUntil pgtype.Date
		templateID  pgtype.UUID
		createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &e.Title, &e.ClubName, &description, &location, &email, &imageURL,
		&startTime, &e.Status, &e.RepeatWeekly, &repeatUntil, &templateID, &createdAt); err != nil {
		return nil, err
	}
	e.ID = uuid.UUID(id.Bytes)
	e.Description = textValue(description)
	e.Location = textValue(location)
	e.ContactEmail = textValue(email)
	e.ImageURL = textValue(imageURL)
	e.StartTime = pgtypeTimestamptzToTime(startTime)
	e.RepeatUntil = dateValue(repeatUntil)
	if templateID.Valid {
		t := uuid.UUID(templateID.Bytes)
		e.TemplateEventID = &t
	}
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return &e, nil
}

func clubToDomain(id pgtype.UUID, name string, email, guildID, channelID pgtype.Text, createdAt, updatedAt pgtype.Timestamptz) *entities.Club {
	return &entities.Club{
		ID:               uuid.UUID(id.Bytes),
		Name:             name,
		Email:            textValue(email),
		DiscordGuildID:   textValue(guildID),
		DiscordChannelID: textValue(channelID),
		CreatedAt:        pgtypeTimestamptzToTime(createdAt),
		UpdatedAt:        pgtypeTimestamptzToTime(updatedAt),
	}
}
