package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
)

type createClubRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type saveTargetRequest struct {
	ClubID    string `json:"clubId" validate:"required"`
	GuildID   string `json:"guildId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
}

func (h *Handler) CreateClub(c *fiber.Ctx) error {
	var req createClubRequest
	if err := c.BodyParser(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}
	if err := h.validate.Struct(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}

	club := &entities.Club{Name: req.Name, Email: req.Email}
	if err := h.clubs.Create(c.UserContext(), club); err != nil {
		return h.jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":   club.ID.String(),
		"name": club.Name,
	})
}

// SaveDiscordTarget records which guild/channel a club's approved events
// get posted to.
func (h *Handler) SaveDiscordTarget(c *fiber.Ctx) error {
	var req saveTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}
	if err := h.validate.Struct(&req); err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}

	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return h.jsonErrorCode(c, "bad_request")
	}

	if err := h.clubs.SaveDiscordTarget(c.UserContext(), clubID, req.GuildID, req.ChannelID); err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListGuildChannels lists the postable channels of a linked guild.
func (h *Handler) ListGuildChannels(c *fiber.Ctx) error {
	guildID := c.Query("guildId")
	if guildID == "" {
		return h.jsonErrorCode(c, "bad_request")
	}

	channels, err := h.clubs.ListGuildChannels(c.UserContext(), guildID)
	if err != nil {
		return h.jsonError(c, err)
	}

	type channelResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type int    `json:"type"`
	}
	out := make([]channelResponse, len(channels))
	for i, ch := range channels {
		out[i] = channelResponse{ID: ch.ID, Name: ch.Name, Type: ch.Type}
	}
	return c.JSON(fiber.Map{"channels": out})
}
