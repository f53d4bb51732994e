package http

import (
	"github.com/gofiber/fiber/v2"

	"clubboard/internal/domain/entities"
)

type waitlistRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// Honeypot field: bots fill it, humans never see it.
	HP string `json:"hp"`
}

func (h *Handler) WaitlistSignup(c *fiber.Ctx) error {
	var req waitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}
	if req.HP != "" {
		return c.JSON(fiber.Map{"ok": true})
	}
	if err := h.validate.Var(req.Email, "required,email"); err != nil {
		return h.jsonErrorCode(c, "invalid_email")
	}

	signup := &entities.WaitlistSignup{
		Email:       req.Email,
		Name:        req.Name,
		UTMSource:   c.Query("utm_source"),
		UTMMedium:   c.Query("utm_medium"),
		UTMCampaign: c.Query("utm_campaign"),
		UserAgent:   c.Get(fiber.HeaderUserAgent),
		IP:          c.IP(),
	}
	if err := h.waitlist.Signup(c.UserContext(), signup); err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
