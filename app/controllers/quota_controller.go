package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/remonromany/wpgenius/app/repository"
	"github.com/remonromany/wpgenius/internal/pkg/aiproviders"
	"github.com/remonromany/wpgenius/internal/pkg/quota"
)

// HandleGetQuotas returns the current user's per-provider daily usage.
// Quota rows are created on first access, so a fresh account sees the full
// catalog with zero usage.
func HandleGetQuotas(c *fiber.Ctx) error {
	manager := quota.NewManager(
		aiproviders.Default(),
		repository.GetGlobalFactory().GetQuotaRepository(),
		currentUserID(c),
	)
	if err := manager.LoadQuotas(); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load quotas")
	}

	return c.JSON(fiber.Map{"quotas": manager.QuotaStatus()})
}

// HandleListModels returns the provider catalog with all invocable models.
func HandleListModels(c *fiber.Ctx) error {
	catalog := aiproviders.Default()
	return c.JSON(fiber.Map{
		"providers":     catalog.Providers(),
		"default_model": catalog.DefaultModel(),
	})
}
