package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialposts/internal/middleware"
	"socialposts/internal/models"
	"socialposts/internal/services"
)

// ProfileHandler handles HTTP requests for profiles, addressed by user ID.
type ProfileHandler struct {
	service   *services.ProfileService
	validator *requestValidator
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		validator: newRequestValidator(),
	}
}

// RegisterRoutes registers the profile routes.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	profileRoutes := router.Group("/profiles")
	profileRoutes.Get("/:userId", middleware.IntParams("userId"), h.HandleGetProfile)
	profileRoutes.Put("/:userId", middleware.IntParams("userId"), h.HandleUpdateProfile)
	profileRoutes.Delete("/:userId", middleware.IntParams("userId"), h.HandleDeleteProfile)
}

func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.UserContext(), middleware.ParamID(c, "userId"))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := h.validator.bind(c, &req); err != nil {
		return err
	}

	profile, err := h.service.UpdateProfile(c.UserContext(), middleware.ParamID(c, "userId"), req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	if err := h.service.DeleteProfile(c.UserContext(), middleware.ParamID(c, "userId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Profile deleted successfully",
	})
}
