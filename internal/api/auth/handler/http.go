package authHandler

import (
	authService "budgefy/internal/api/auth/service"
	"budgefy/internal/middleware"
	"budgefy/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
	auth.Get("/google", h.HandleGoogleLogin)
	auth.Get("/google/callback", h.CallBackFromGoogle)
	auth.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
	auth.Patch("/me", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	auth.Patch("/me/photo", h.middleware.NewTokenMiddleware, h.HandleUpdateProfilePhoto)
	auth.Delete("/me", h.middleware.NewTokenMiddleware, h.HandleDeleteUser)

	password := auth.Group("/password")
	password.Post("/forgot", h.HandleForgotPassword)
	password.Post("/reset", h.HandleResetPassword)
}
