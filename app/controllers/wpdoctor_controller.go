package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/remonromany/wpgenius/app/repository"
	"github.com/remonromany/wpgenius/internal/pkg/wpdoctor"
)

type analyzeProjectRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Version string `json:"version"`
}

// HandleAnalyzeProject runs the WordPress package analysis and stores the
// result.
func HandleAnalyzeProject(c *fiber.Ctx) error {
	var req analyzeProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	analyzer := wpdoctor.NewAnalyzer(repository.GetGlobalFactory().GetWpProjectRepository())
	result, err := analyzer.Analyze(currentUserID(c), wpdoctor.AnalyzeInput{
		Name:    req.Name,
		Type:    req.Type,
		Version: req.Version,
	})
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"project": result.Project,
		"issues":  result.Issues,
	})
}

// HandleListProjects returns the current user's analyzed projects.
func HandleListProjects(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetWpProjectRepository()
	projects, err := repo.GetByUserID(currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load projects")
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// HandleGetProject returns one project together with its findings.
func HandleGetProject(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetWpProjectRepository()
	project, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Project not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load project")
	}
	if project.UserID != currentUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Project not found")
	}

	issues, err := repo.GetIssuesByProjectID(project.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load issues")
	}

	return c.JSON(fiber.Map{
		"project": project,
		"issues":  issues,
	})
}
