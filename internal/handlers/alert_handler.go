package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rakapratama/talent-tracker/internal/services"
)

type AlertHandler struct {
	feed *services.AlertFeed
}

func NewAlertHandler(feed *services.AlertFeed) *AlertHandler {
	return &AlertHandler{feed: feed}
}

// HandleList handles GET /alerts. The dashboard polls this endpoint and
// renders each alert as a transient banner.
func (h *AlertHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	alerts := h.feed.Recent(limit)

	return c.JSON(fiber.Map{
		"total":  len(alerts),
		"alerts": alerts,
	})
}
