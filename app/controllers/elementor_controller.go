package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/remonromany/wpgenius/app/repository"
	"github.com/remonromany/wpgenius/internal/pkg/elementor"
)

type generateTemplateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sections    []string `json:"sections"`
}

// HandleGenerateTemplate builds a page-builder template and stores it.
func HandleGenerateTemplate(c *fiber.Ctx) error {
	var req generateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	generator := elementor.NewGenerator(repository.GetGlobalFactory().GetElementorTemplateRepository())
	template, err := generator.Generate(currentUserID(c), elementor.GenerateInput{
		Name:        req.Name,
		Description: req.Description,
		Sections:    req.Sections,
	})
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

// HandleListTemplates returns the current user's templates.
func HandleListTemplates(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetElementorTemplateRepository()
	templates, err := repo.GetByUserID(currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load templates")
	}
	return c.JSON(fiber.Map{"templates": templates})
}

// HandleDeleteTemplate removes one of the current user's templates.
func HandleDeleteTemplate(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetElementorTemplateRepository()
	template, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Template not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load template")
	}
	if template.UserID != currentUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Template not found")
	}

	if err := repo.Delete(template.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete template")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
