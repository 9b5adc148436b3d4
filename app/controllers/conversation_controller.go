package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/app/repository"
)

type createConversationRequest struct {
	Title string `json:"title"`
	Model string `json:"model"`
}

// HandleListConversations returns the current user's conversations.
func HandleListConversations(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetConversationRepository()
	conversations, err := repo.GetByUserID(currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load conversations")
	}
	return c.JSON(fiber.Map{"conversations": conversations})
}

// HandleCreateConversation starts an empty conversation.
func HandleCreateConversation(c *fiber.Ctx) error {
	var req createConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	conversation := &models.Conversation{
		UserID: currentUserID(c),
		Title:  req.Title,
		Model:  req.Model,
	}
	repo := repository.GetGlobalFactory().GetConversationRepository()
	if err := repo.Create(conversation); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create conversation")
	}
	return c.Status(fiber.StatusCreated).JSON(conversation)
}

// HandleGetConversation returns one conversation with its full message
// history.
func HandleGetConversation(c *fiber.Ctx) error {
	conversation, err := ownedConversation(c)
	if err != nil {
		return err
	}

	messages, err := repository.GetGlobalFactory().GetMessageRepository().GetByConversationID(conversation.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load messages")
	}

	return c.JSON(fiber.Map{
		"conversation": conversation,
		"messages":     messages,
	})
}

// HandleDeleteConversation removes a conversation and its messages.
func HandleDeleteConversation(c *fiber.Ctx) error {
	conversation, err := ownedConversation(c)
	if err != nil {
		return err
	}

	repo := repository.GetGlobalFactory().GetConversationRepository()
	if err := repo.Delete(conversation.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete conversation")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ownedConversation(c *fiber.Ctx) (*models.Conversation, error) {
	repo := repository.GetGlobalFactory().GetConversationRepository()
	conversation, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Conversation not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load conversation")
	}
	if conversation.UserID != currentUserID(c) {
		return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Conversation not found")
	}
	return conversation, nil
}
