package http

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const requestTimeout = 5 * time.Second

// NewServer builds the fiber app and mounts all routes.
func NewServer(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(requestObserver)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")
	api.Get("/moderation", h.ListPending)
	api.Post("/moderation", h.Decide)
	api.Get("/events", h.ListEvents)
	api.Post("/events", h.SubmitEvent)
	api.Post("/clubs", h.CreateClub)
	api.Get("/discord/channels", h.ListGuildChannels)
	api.Post("/discord/save-target", h.SaveDiscordTarget)
	api.Post("/waitlist", h.WaitlistSignup)

	return app
}

// Request-ID + timing + per-request timeout guard.
func requestObserver(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = utils.UUID()
	}
	c.Set("X-Request-ID", id)

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()
	log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
		id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
