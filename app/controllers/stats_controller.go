package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/remonromany/wpgenius/internal/pkg/statistics"
)

// HandleGetStats returns aggregate platform usage numbers. Values are served
// from the cache and may lag the database by up to the cache expiration.
func HandleGetStats(c *fiber.Ctx) error {
	return c.JSON(statistics.GetStatisticsData())
}
