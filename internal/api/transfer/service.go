package transfer

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pvieira/go-moneytransfer/internal/app"
	"github.com/pvieira/go-moneytransfer/internal/domain"
	"github.com/pvieira/go-moneytransfer/internal/helper"
)

type moneySender interface {
	SendMoney(ctx context.Context, cmd app.SendMoneyCommand) error
}

func SendMoneyHandler(svc moneySender) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Parse send money schema
		var req = SendMoneySchema{}
		if err := c.Bind().Body(&req); err != nil {
			return fiber.ErrBadRequest
		}
		if err := helper.ValidateInput(&req); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		cmd, err := app.NewSendMoneyCommand(
			domain.AccountID(req.SourceAccountID),
			domain.AccountID(req.TargetAccountID),
			domain.NewMoney(req.Amount),
		)
		if err != nil {
			return writeDomainError(c, err)
		}
		cmd.IdempotencyKey = c.Get("Idempotency-Key")

		if err := svc.SendMoney(context.Background(), cmd); err != nil {
			return writeDomainError(c, err)
		}

		return c.JSON(SendMoneyResponseSchema{
			SourceAccountID: req.SourceAccountID,
			TargetAccountID: req.TargetAccountID,
			Amount:          req.Amount,
			Status:          "completed",
		})
	}
}

// writeDomainError maps business errors onto HTTP responses carrying the
// details the error holds.
func writeDomainError(c fiber.Ctx, err error) error {
	var (
		same         *domain.SameAccountTransferError
		exceeded     *domain.ThresholdExceededError
		insufficient *domain.InsufficientBalanceError
	)
	switch {
	case errors.As(err, &same):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      same.Error(),
			"account_id": int64(same.AccountID),
		})
	case errors.As(err, &exceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     exceeded.Error(),
			"threshold": exceeded.Threshold.Amount().IntPart(),
			"actual":    exceeded.Actual.Amount().IntPart(),
		})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":     insufficient.Error(),
			"balance":   insufficient.Balance.Amount().IntPart(),
			"attempted": insufficient.Attempted.Amount().IntPart(),
		})
	case errors.Is(err, domain.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Account not found",
		})
	default:
		return err
	}
}
