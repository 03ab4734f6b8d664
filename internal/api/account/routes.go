package account

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pvieira/go-moneytransfer/internal/app"
	"github.com/pvieira/go-moneytransfer/internal/storage"
)

func InitializeRoutes(router *fiber.App, store *storage.AccountRepository, movements *app.MoneyMovementService) {
	router.Post("/v1/accounts", CreateNewAccountHandler(store))
	router.Get("/v1/accounts/:id/balance", GetBalanceHandler(movements))
	router.Get("/v1/accounts/:id/activities", ListActivitiesHandler(store))
	router.Post("/v1/accounts/:id/deposit", DepositHandler(movements))
	router.Post("/v1/accounts/:id/withdraw", WithdrawHandler(movements))
}
