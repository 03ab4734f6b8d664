package transfer

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pvieira/go-moneytransfer/internal/app"
)

func InitializeRoutes(router *fiber.App, svc *app.SendMoneyService) {
	router.Post("/v1/transfer", SendMoneyHandler(svc))
}
