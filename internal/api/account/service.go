package account

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/pvieira/go-moneytransfer/internal/domain"
	"github.com/pvieira/go-moneytransfer/internal/helper"
)

type accountStore interface {
	CreateAccount(ctx context.Context, ownerName string, opening domain.Money) (domain.AccountID, error)
	ListActivities(ctx context.Context, id domain.AccountID, limit, offset int) ([]domain.Activity, int, error)
}

type movementService interface {
	Deposit(ctx context.Context, id domain.AccountID, amount domain.Money) error
	Withdraw(ctx context.Context, id domain.AccountID, amount domain.Money) error
	GetBalance(ctx context.Context, id domain.AccountID) (domain.Money, error)
}

func CreateNewAccountHandler(store accountStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Parse create account schema
		var req = CreateAccountSchema{}
		if err := c.Bind().Body(&req); err != nil {
			return fiber.ErrBadRequest
		}
		if err := helper.ValidateInput(&req); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		id, err := store.CreateAccount(context.Background(), req.Name, domain.NewMoney(req.OpeningBalance))
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(CreateAccountResponseSchema{
			ID:             int64(id),
			Name:           req.Name,
			OpeningBalance: req.OpeningBalance,
		})
	}
}

func GetBalanceHandler(svc movementService) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := accountIDParam(c)
		if err != nil {
			return fiber.ErrBadRequest
		}

		balance, err := svc.GetBalance(context.Background(), id)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Account not found",
				})
			}
			return err
		}

		return c.JSON(BalanceShowSchema{
			AccountID: int64(id),
			Balance:   balance.Amount().IntPart(),
		})
	}
}

func DepositHandler(svc movementService) fiber.Handler {
	return moveMoneyHandler(svc.Deposit)
}

func WithdrawHandler(svc movementService) fiber.Handler {
	return moveMoneyHandler(svc.Withdraw)
}

func moveMoneyHandler(move func(ctx context.Context, id domain.AccountID, amount domain.Money) error) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := accountIDParam(c)
		if err != nil {
			return fiber.ErrBadRequest
		}

		var req = MoveMoneySchema{}
		if err := c.Bind().Body(&req); err != nil {
			return fiber.ErrBadRequest
		}
		if err := helper.ValidateInput(&req); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if err := move(context.Background(), id, domain.NewMoney(req.Amount)); err != nil {
			var insufficient *domain.InsufficientBalanceError
			switch {
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

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ListActivitiesHandler(store accountStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := accountIDParam(c)
		if err != nil {
			return fiber.ErrBadRequest
		}

		pagination := helper.GetPagination[ActivityShowSchema](c)
		activities, total, err := store.ListActivities(
			context.Background(), id, pagination.Size, (pagination.Page-1)*pagination.Size)
		if err != nil {
			return err
		}
		pagination.Total = &total

		for _, activity := range activities {
			pagination.Items = append(pagination.Items, toActivityShowSchema(activity))
		}

		return c.JSON(pagination)
	}
}

func accountIDParam(c fiber.Ctx) (domain.AccountID, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return domain.AccountID(id), nil
}

func toActivityShowSchema(activity domain.Activity) ActivityShowSchema {
	out := ActivityShowSchema{
		Timestamp: activity.Timestamp(),
		Amount:    activity.Amount().Amount().IntPart(),
	}
	if id, ok := activity.ID(); ok {
		out.ID = int64(id)
	}
	if source, ok := activity.Source(); ok {
		v := int64(source)
		out.SourceAccountID = &v
	}
	if target, ok := activity.Target(); ok {
		v := int64(target)
		out.TargetAccountID = &v
	}
	switch {
	case activity.IsExternalDeposit():
		out.Type = "external_deposit"
	case activity.IsExternalWithdrawal():
		out.Type = "external_withdrawal"
	default:
		out.Type = "transfer"
	}
	return out
}
