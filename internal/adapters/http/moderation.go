package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type decideRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// ListPending returns the moderation queue, most recently submitted first.
func (h *Handler) ListPending(c *fiber.Ctx) error {
	events, err := h.moderation.ListPending(c.UserContext())
	if err != nil {
		return h.textError(c, err)
	}
	return c.JSON(toEventResponses(events))
}

// Decide approves or rejects a pending event. Success is a bare "OK": the
// moderation UI re-fetches the queue rather than reading a payload.
func (h *Handler) Decide(c *fiber.Ctx) error {
	var req decideRequest
	if err := c.BodyParser(&req); err != nil || req.ID == "" || req.Action == "" {
		return c.Status(fiber.StatusBadRequest).SendString(h.translator.T(h.locale(c), "bad_request", nil))
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(h.translator.T(h.locale(c), "bad_request", nil))
	}

	if err := h.moderation.Decide(c.UserContext(), id, req.Action); err != nil {
		return h.textError(c, err)
	}
	return c.SendString("OK")
}
