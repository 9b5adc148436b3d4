package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/remonromany/wpgenius/app/controllers"
	"github.com/remonromany/wpgenius/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	v1.Get("/stats", controllers.HandleGetStats)

	// auth (no session required)
	v1.Post("/auth/register", controllers.HandleAuthRegister)
	v1.Post("/auth/login", controllers.HandleAuthLogin)
	v1.Post("/auth/logout", controllers.HandleAuthLogout)

	// everything below needs a logged-in session
	authed := v1.Group("", middleware.RequireAPISessionAuth)

	authed.Post("/chat", controllers.HandleChat)

	authed.Get("/conversations", controllers.HandleListConversations)
	authed.Post("/conversations", controllers.HandleCreateConversation)
	authed.Get("/conversations/:uuid", controllers.HandleGetConversation)
	authed.Delete("/conversations/:uuid", controllers.HandleDeleteConversation)

	authed.Get("/quotas", controllers.HandleGetQuotas)
	authed.Get("/ai/models", controllers.HandleListModels)

	authed.Post("/images/generate", controllers.HandleGenerateImage)
	authed.Get("/images", controllers.HandleListImages)
	authed.Delete("/images/:uuid", controllers.HandleDeleteImage)

	authed.Post("/wp-projects/analyze", controllers.HandleAnalyzeProject)
	authed.Get("/wp-projects", controllers.HandleListProjects)
	authed.Get("/wp-projects/:uuid", controllers.HandleGetProject)

	authed.Post("/templates/generate", controllers.HandleGenerateTemplate)
	authed.Get("/templates", controllers.HandleListTemplates)
	authed.Delete("/templates/:uuid", controllers.HandleDeleteTemplate)

	authed.Get("/wallet", controllers.HandleGetWallet)
	authed.Get("/wallet/transactions", controllers.HandleListWalletTransactions)
	authed.Post("/wallet/deposit", controllers.HandleWalletDeposit)

	authed.Get("/user/account", controllers.HandleGetUserAccount)
	authed.Patch("/user/settings", controllers.HandleUpdateUserSettings)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
