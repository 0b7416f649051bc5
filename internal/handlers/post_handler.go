package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialposts/internal/middleware"
	"socialposts/internal/models"
	"socialposts/internal/services"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service   *services.PostService
	validator *requestValidator
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:   service,
		validator: newRequestValidator(),
	}
}

// RegisterRoutes registers the post routes. /user/:userId is registered before
// /:id so it is not shadowed.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Get("/user/:userId", middleware.IntParams("userId"), h.HandleGetUserPosts)
	postRoutes.Get("/:id", middleware.IntParams("id"), h.HandleGetPostByID)
	postRoutes.Put("/:id/user/:userId", middleware.IntParams("id", "userId"), h.HandleUpdatePost)
	postRoutes.Delete("/:id/user/:userId", middleware.IntParams("id", "userId"), h.HandleDeletePost)
}

// HandleCreatePost creates a new post.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req models.CreatePostRequest
	if err := h.validator.bind(c, &req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleGetPosts lists every post, newest first.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single post.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	post, err := h.service.GetPostByID(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// HandleGetUserPosts lists the posts written by a user.
func (h *PostHandler) HandleGetUserPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetUserPosts(c.UserContext(), middleware.ParamID(c, "userId"))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// HandleUpdatePost updates a post on behalf of the user in the path.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var req models.UpdatePostRequest
	if err := h.validator.bind(c, &req); err != nil {
		return err
	}

	post, err := h.service.UpdatePost(c.UserContext(), middleware.ParamID(c, "id"), middleware.ParamID(c, "userId"), req)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// HandleDeletePost deletes a post on behalf of the user in the path.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	if err := h.service.DeletePost(c.UserContext(), middleware.ParamID(c, "id"), middleware.ParamID(c, "userId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
