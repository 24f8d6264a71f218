package analyticsHandler

import (
	analyticsService "budgefy/internal/api/analytics/service"
	"budgefy/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	analyticsService analyticsService.AnalyticsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as analyticsService.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		analyticsService: as,
	}
}

func (h *AnalyticsHandler) Start(srv fiber.Router) {
	analytics := srv.Group("/analytics")
	analytics.Get("/categories", h.middleware.NewTokenMiddleware, h.HandleCategoryTotals)
	analytics.Get("/monthly", h.middleware.NewTokenMiddleware, h.HandleMonthlySeries)
	analytics.Get("/daily", h.middleware.NewTokenMiddleware, h.HandleDailySeries)
	analytics.Get("/insights", h.middleware.NewTokenMiddleware, h.HandleInsights)
}
