package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pvieira/go-moneytransfer/internal/api/account"
	"github.com/pvieira/go-moneytransfer/internal/api/transfer"
	"github.com/pvieira/go-moneytransfer/internal/app"
	"github.com/pvieira/go-moneytransfer/internal/storage"
)

type Deps struct {
	Accounts  *storage.AccountRepository
	SendMoney *app.SendMoneyService
	Movements *app.MoneyMovementService
}

func InitializeRoutes(router *fiber.App, deps Deps) {
	account.InitializeRoutes(router, deps.Accounts, deps.Movements)
	transfer.InitializeRoutes(router, deps.SendMoney)
}
