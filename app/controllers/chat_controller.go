package controllers

import (
	"context"
	"errors"
	"fmt"
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

const conversationTitleMaxLen = 50

var (
	errConversationNotFound = errors.New("conversation not found")
	errProviderUnavailable  = errors.New("provider unavailable")
)

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
	ModelID        string `json:"model_id"`
}

// chatGenerator is the slice of the AI client the chat turn needs.
type chatGenerator interface {
	Chat(ctx context.Context, modelID string, messages []aiclient.Message) (*aiclient.Reply, error)
}

// usageRecorder is the slice of the quota manager the chat turn needs.
type usageRecorder interface {
	IncrementUsage(providerID string) error
}

// chatWorkflow runs one chat turn against its collaborators. Keeping them
// as fields lets the persistence ordering be exercised in isolation.
type chatWorkflow struct {
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
	client        chatGenerator
	usage         usageRecorder
}

// HandleChat serves one chat turn: route the request through the quota
// manager, persist the user message, call the resolved provider, persist the
// reply and only then record the usage. The user message survives a failed
// generation, but usage is never charged for one.
func HandleChat(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Message must not be empty")
	}

	repos := repository.GetGlobalRepositories()

	manager := quota.NewManager(aiproviders.Default(), repos.Quota, userID)
	decision, err := manager.CheckAndGetBestProvider(req.ModelID)
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

	// Paid usage needs wallet headroom before any provider call is made.
	if decision.Cost > 0 {
		balance, err := walletSvc.Balance(c.Context(), userID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load wallet balance")
		}
		if balance < decision.Cost {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error":        "insufficient_balance",
				"message":      "Daily quota exhausted and wallet balance is too low. Please add funds.",
				"quota_status": manager.QuotaStatus(),
			})
		}
	}

	workflow := &chatWorkflow{
		conversations: repos.Conversation,
		messages:      repos.Message,
		client:        aiClient,
		usage:         manager,
	}
	conversation, assistantMessage, err := workflow.run(c.Context(), userID, req.ConversationID, text, decision)
	if err != nil {
		switch {
		case errors.Is(err, errConversationNotFound):
			return jsonError(c, fiber.StatusNotFound, "not_found", "Conversation not found")
		case errors.Is(err, errProviderUnavailable):
			log.Printf("chat: provider call failed for user %d on %s: %v", userID, decision.Model.ID, err)
			return jsonError(c, fiber.StatusBadGateway, "provider_error", "The AI provider is currently unavailable. Please retry your request.")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to process chat message")
		}
	}

	if decision.Cost > 0 {
		if _, err := walletSvc.ChargeUsage(c.Context(), userID, decision.Cost, "AI usage: "+decision.Model.ID); err != nil {
			log.Printf("chat: wallet charge failed for user %d: %v", userID, err)
		}
	}

	if conversation.Title == models.DefaultConversationTitle {
		if err := repos.Conversation.UpdateTitle(conversation.ID, truncateTitle(text)); err != nil {
			log.Printf("chat: failed to update conversation title: %v", err)
		}
	}
	_ = repos.Conversation.Touch(conversation.ID)

	response := fiber.Map{
		"conversation_id": conversation.UUID,
		"message":         assistantMessage,
		"used_model":      decision.Model.Name,
		"quota_remaining": decision.QuotaRemaining,
	}
	if decision.SwitchedProvider != "" {
		response["switched_provider"] = decision.SwitchedProvider
	}

	return c.JSON(response)
}

// run executes the durable part of a chat turn. Ordering is the contract:
// the user message is persisted before the provider call, and usage is
// recorded only after the reply is persisted. A provider failure leaves the
// user message in place and the usage counter untouched.
func (w *chatWorkflow) run(ctx context.Context, userID uint, conversationUUID, text string, decision *quota.Decision) (*models.Conversation, *models.Message, error) {
	conversation, err := w.resolveConversation(userID, conversationUUID, decision.Model.ID)
	if err != nil {
		return nil, nil, err
	}

	userMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.MESSAGE_ROLE_USER,
		Content:        text,
	}
	if err := w.messages.Create(userMessage); err != nil {
		return nil, nil, err
	}

	history, err := w.messages.GetByConversationID(conversation.ID)
	if err != nil {
		return nil, nil, err
	}

	prompt := make([]aiclient.Message, 0, len(history)+1)
	prompt = append(prompt, aiclient.Message{Role: models.MESSAGE_ROLE_SYSTEM, Content: aiclient.WordPressSystemPrompt})
	for _, m := range history {
		prompt = append(prompt, aiclient.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := w.client.Chat(ctx, decision.Model.ID, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errProviderUnavailable, err)
	}

	assistantMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.MESSAGE_ROLE_ASSISTANT,
		Content:        reply.Content,
		Model:          decision.Model.ID,
		TokensUsed:     reply.TokensUsed,
		Cost:           decision.Cost,
	}
	if err := w.messages.Create(assistantMessage); err != nil {
		return nil, nil, err
	}

	if err := w.usage.IncrementUsage(decision.Provider); err != nil {
		return nil, nil, err
	}

	return conversation, assistantMessage, nil
}

// resolveConversation loads the addressed conversation and verifies
// ownership, or starts a new one when no id was given. A failed create is
// an infrastructure error, not a missing conversation.
func (w *chatWorkflow) resolveConversation(userID uint, conversationUUID, modelID string) (*models.Conversation, error) {
	if conversationUUID == "" {
		conversation := &models.Conversation{
			UserID: userID,
			Model:  modelID,
		}
		if err := w.conversations.Create(conversation); err != nil {
			return nil, err
		}
		return conversation, nil
	}

	conversation, err := w.conversations.GetByUUID(conversationUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errConversationNotFound
		}
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, errConversationNotFound
	}
	return conversation, nil
}

func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= conversationTitleMaxLen {
		return text
	}
	return string(runes[:conversationTitleMaxLen]) + "..."
}
