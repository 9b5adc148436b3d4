package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/remonromany/wpgenius/internal/pkg/aiclient"
	"github.com/remonromany/wpgenius/internal/pkg/usercontext"
	"github.com/remonromany/wpgenius/internal/pkg/wallet"
)

const (
	AUTH_KEY       string = "authenticated"
	USER_ID        string = "user_id"
	USER_NAME      string = "username"
	USER_IS_ADMIN  string = "isAdmin"
	FROM_PROTECTED string = "from_protected"
)

var (
	aiClient  *aiclient.Client
	walletSvc *wallet.Service
)

// InitializeAPIControllers injects the shared collaborators the API handlers
// depend on. Called once from the router during application startup.
func InitializeAPIControllers(client *aiclient.Client, walletService *wallet.Service) {
	aiClient = client
	walletSvc = walletService
}

func currentUserID(c *fiber.Ctx) uint {
	return usercontext.GetUserID(c)
}

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "message": message})
}
