package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"socialposts/internal/models"
	"socialposts/internal/services"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validator   *requestValidator
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   newRequestValidator(),
		log:         log,
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := h.validator.bind(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		h.log.Debug().Err(err).Str("email", req.Email).Msg("registration rejected")
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin checks credentials. No token is issued; the response only
// confirms the credentials for this request.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := h.validator.bind(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		h.log.Debug().Err(err).Str("email", req.Email).Msg("login rejected")
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}
