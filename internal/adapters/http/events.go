package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"clubboard/internal/domain/entities"
)

type submitEventRequest struct {
	Title        string    `json:"title" validate:"required"`
	ClubName     string    `json:"club_name" validate:"required"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ContactEmail string    `json:"contact_email" validate:"omitempty,email"`
	ImageURL     string    `json:"image_url" validate:"omitempty,url"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	RepeatWeekly bool      `json:"repeat_weekly"`
	RepeatUntil  string    `json:"repeat_until" validate:"omitempty,datetime=2006-01-02"`
}

type eventResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ClubName     string    `json:"club_name"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`
	RepeatWeekly bool      `json:"repeat_weekly"`
	RepeatUntil  string    `json:"repeat_until,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toEventResponse(e *entities.Event) eventResponse {
	resp := eventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		ClubName:     e.ClubName,
		Description:  e.Description,
		Location:     e.Location,
		ContactEmail: e.ContactEmail,
		ImageURL:     e.ImageURL,
		StartTime:    e.StartTime,
		Status:       e.Status,
		RepeatWeekly: e.RepeatWeekly,
		CreatedAt:    e.CreatedAt,
	}
	if e.HasRepeatUntil() {
		resp.RepeatUntil = e.RepeatUntil.Format("2006-01-02")
	}
	return resp
}

func toEventResponses(events []entities.Event) []eventResponse {
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	return out
}

// SubmitEvent stores a club submission as a pending event.
func (h *Handler) SubmitEvent(c *fiber.Ctx) error {
	var req submitEventRequest
	if err := c.BodyParser(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}
	if err := h.validate.Struct(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}

	event := &entities.Event{
		Title:        req.Title,
		ClubName:     req.ClubName,
		Description:  req.Description,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		ImageURL:     req.ImageURL,
		StartTime:    req.StartTime,
		RepeatWeekly: req.RepeatWeekly,
	}
	if req.RepeatUntil != "" {
		until, err := time.ParseInLocation("2006-01-02", req.RepeatUntil, time.UTC)
		if err != nil {
			return h.jsonErrorCode(c, "bad_request")
		}
		event.RepeatUntil = until
	}

	if err := h.events.Submit(c.UserContext(), event); err != nil {
		return h.jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toEventResponse(event))
}

// ListEvents serves the public feed of approved events.
// ?window=upcoming (default) | past | today, ?club=NAME, ?limit=N (past only).
func (h *Handler) ListEvents(c *fiber.Ctx) error {
	var (
		events []entities.Event
		err    error
	)
	switch c.Query("window", "upcoming") {
	case "upcoming":
		events, err = h.events.Upcoming(c.UserContext(), c.Query("club"))
	case "past":
		events, err = h.events.Past(c.UserContext(), c.Query("club"), c.QueryInt("limit"))
	case "today":
		events, err = h.events.Today(c.UserContext(), c.Query("club"))
	default:
		return h.jsonErrorCode(c, "bad_request")
	}
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(toEventResponses(events))
}
