package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/remonromany/wpgenius/internal/pkg/wallet"
)

type depositRequest struct {
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	StripePaymentID string  `json:"stripe_payment_id"`
}

// HandleGetWallet returns the current user's wallet balance.
func HandleGetWallet(c *fiber.Ctx) error {
	balance, err := walletSvc.Balance(c.Context(), currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load wallet balance")
	}
	return c.JSON(fiber.Map{"balance": balance})
}

// HandleListWalletTransactions returns the wallet history, newest first.
func HandleListWalletTransactions(c *fiber.Ctx) error {
	transactions, err := walletSvc.Transactions(c.Context(), currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load transactions")
	}
	return c.JSON(fiber.Map{"transactions": transactions})
}

// HandleWalletDeposit credits the wallet. Payment capture itself happens at
// the payment provider; this records the settled amount.
func HandleWalletDeposit(c *fiber.Ctx) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	tx, err := walletSvc.Deposit(c.Context(), currentUserID(c), req.Amount, req.Description, req.StripePaymentID)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidAmount) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to record deposit")
	}

	return c.Status(fiber.StatusCreated).JSON(tx)
}
