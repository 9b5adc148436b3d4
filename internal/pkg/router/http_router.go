package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/remonromany/wpgenius/app/controllers"
	"github.com/remonromany/wpgenius/internal/pkg/aiclient"
	"github.com/remonromany/wpgenius/internal/pkg/database"
	"github.com/remonromany/wpgenius/internal/pkg/env"
	"github.com/remonromany/wpgenius/internal/pkg/middleware"
	"github.com/remonromany/wpgenius/internal/pkg/session"
	"github.com/remonromany/wpgenius/internal/pkg/wallet"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Inject the AI client and wallet service into the API controllers.
	// Provider credentials are read once here, never ad hoc per call.
	controllers.InitializeAPIControllers(
		aiclient.NewClient(aiclient.Config{
			GeminiAPIKey:    env.GetEnv("GEMINI_API_KEY", ""),
			AnthropicAPIKey: env.GetEnv("ANTHROPIC_API_KEY", ""),
			OpenAIAPIKey:    env.GetEnv("OPENAI_API_KEY", ""),
			GroqAPIKey:      env.GetEnv("GROQ_API_KEY", ""),
		}),
		wallet.NewServiceFromDB(database.GetDB()),
	)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
