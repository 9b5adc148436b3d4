package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/remonromany/wpgenius/app/repository"
	"github.com/remonromany/wpgenius/internal/pkg/utils"
)

type updateSettingsRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Language  *string `json:"language"`
	Theme     *string `json:"theme"`
}

// HandleGetUserAccount returns account information for the authenticated user.
func HandleGetUserAccount(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetByID(currentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	return c.JSON(fiber.Map{
		"id":             account.ID,
		"username":       account.Name,
		"email":          account.Email,
		"first_name":     account.FirstName,
		"last_name":      account.LastName,
		"language":       account.Language,
		"theme":          account.Theme,
		"avatar_url":     utils.GetGravatarURL(account.Email, 200),
		"status":         account.Status,
		"wallet_balance": account.WalletBalance,
		"created_at":     account.CreatedAt.UTC().Format(time.RFC3339),
		"last_login_at":  formatTimePtr(account.LastLoginAt),
	})
}

// HandleUpdateUserSettings applies a partial update to the user's profile
// preferences. Absent fields keep their current value.
func HandleUpdateUserSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetByID(currentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}
	if req.Language != nil {
		account.Language = *req.Language
	}
	if req.Theme != nil {
		account.Theme = *req.Theme
	}

	if err := account.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := repo.Update(account); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update user")
	}

	return c.JSON(account)
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
