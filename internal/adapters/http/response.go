package http

import (
	"github.com/gofiber/fiber/v2"

	"clubboard/internal/domain"
)

func (h *Handler) locale(c *fiber.Ctx) string {
	// go-i18n accepts raw Accept-Language header contents.
	return c.Get(fiber.HeaderAcceptLanguage)
}

func statusForCode(code string) int {
	switch code {
	case "event_not_found", "club_not_found":
		return fiber.StatusNotFound
	case "event_not_pending":
		return fiber.StatusConflict
	case "invalid_action", "bad_request", "invalid_email":
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorCode(err error) string {
	if code := domain.Code(err); code != "" {
		return code
	}
	// Anything without a domain code means the store could not serve us.
	return "store_unavailable"
}

// textError renders a plain-text error (the moderation surface contract).
func (h *Handler) textError(c *fiber.Ctx, err error) error {
	code := errorCode(err)
	return c.Status(statusForCode(code)).SendString(h.translator.T(h.locale(c), code, nil))
}

// jsonError renders {"error": "..."} for the JSON API surface.
func (h *Handler) jsonError(c *fiber.Ctx, err error) error {
	return h.jsonErrorCode(c, errorCode(err))
}

func (h *Handler) jsonErrorCode(c *fiber.Ctx, code string) error {
	return c.Status(statusForCode(code)).JSON(fiber.Map{
		"error": h.translator.T(h.locale(c), code, nil),
	})
}
