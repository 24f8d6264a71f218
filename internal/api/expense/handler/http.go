package expenseHandler

import (
	expenseService "budgefy/internal/api/expense/service"
	"budgefy/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	expenseService expenseService.ExpenseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	es expenseService.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		expenseService: es,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	expenses := srv.Group("/expenses")

	expenses.Use("/live", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	expenses.Get("/live", h.middleware.NewTokenMiddleware, websocket.New(h.HandleLive))

	expenses.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateExpense)
	expenses.Get("/", h.middleware.NewTokenMiddleware, h.HandleListExpenses)
	expenses.Get("/export", h.middleware.NewTokenMiddleware, h.HandleExportExpenses)
	expenses.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetExpense)
	expenses.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateExpense)
	expenses.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteExpense)
}
