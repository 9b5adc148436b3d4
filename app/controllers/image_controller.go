package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/app/repository"
	"github.com/remonromany/wpgenius/internal/pkg/aiclient"
	"github.com/remonromany/wpgenius/internal/pkg/aiproviders"
	"github.com/remonromany/wpgenius/internal/pkg/quota"
)

type generateImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	Style  string `json:"style"`
}

// HandleGenerateImage renders an image from a prompt. Image generation is
// routed and charged through the same quota machinery as chat.
func HandleGenerateImage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req generateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Prompt must not be empty")
	}

	repos := repository.GetGlobalRepositories()

	manager := quota.NewManager(aiproviders.Default(), repos.Quota, userID)
	decision, err := manager.CheckAndGetBestProvider(aiclient.ImageGenerationModel)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to evaluate quota")
	}
	if !decision.CanProceed {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":        "quota_exhausted",
			"message":      "Daily quota exhausted. Please add funds to your wallet to continue.",
			"quota_status": manager.QuotaStatus(),
		})
	}

	imageURL, err := aiClient.GenerateImage(c.Context(), prompt)
	if err != nil {
		log.Printf("images: generation failed for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusBadGateway, "provider_error", "The AI provider is currently unavailable. Please retry your request.")
	}
	if imageURL == "" {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", "The AI provider returned no image. Please retry your request.")
	}

	image := &models.GeneratedImage{
		UserID:   userID,
		Prompt:   prompt,
		ImageURL: imageURL,
		Model:    aiclient.ImageGenerationModel,
		Size:     req.Size,
		Style:    req.Style,
		Cost:     decision.Cost,
	}
	if err := repos.GeneratedImage.Create(image); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save image")
	}

	// Charge only after the image record is durable.
	if err := manager.IncrementUsage(decision.Provider); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to record usage")
	}

	if decision.Cost > 0 {
		if _, err := walletSvc.ChargeUsage(c.Context(), userID, decision.Cost, "Image generation"); err != nil {
			log.Printf("images: wallet charge failed for user %d: %v", userID, err)
		}
	}

	response := fiber.Map{
		"image":           image,
		"quota_remaining": decision.QuotaRemaining,
	}
	if decision.SwitchedProvider != "" {
		response["switched_provider"] = decision.SwitchedProvider
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleListImages returns all generated images of the current user.
func HandleListImages(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetGeneratedImageRepository()
	images, err := repo.GetByUserID(currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load images")
	}
	return c.JSON(fiber.Map{"images": images})
}

// HandleDeleteImage removes one of the current user's generated images.
func HandleDeleteImage(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetGeneratedImageRepository()
	image, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Image not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load image")
	}
	if image.UserID != currentUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Image not found")
	}

	if err := repo.Delete(image.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete image")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
