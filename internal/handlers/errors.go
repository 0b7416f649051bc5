package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"socialposts/internal/models"
	"socialposts/internal/services"
)

// ValidationError reports request body fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// bodyError wraps a malformed request body.
type bodyError struct {
	err error
}

func (e *bodyError) Error() string { return "invalid request body: " + e.err.Error() }
func (e *bodyError) Unwrap() error { return e.err }

// NewErrorHandler returns the fiber.ErrorHandler that maps service errors to
// HTTP statuses and renders {statusCode, message, error}.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"statusCode": fiber.StatusBadRequest,
				"message":    "Validation failed",
				"errors":     validationErr.Fields,
			})
		}

		code, message := resolveError(err)
		if code == fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		return c.Status(code).JSON(fiber.Map{
			"statusCode": code,
			"message":    message,
			"error":      http.StatusText(code),
		})
	}
}

func resolveError(err error) (int, string) {
	var bodyErr *bodyError
	if errors.As(err, &bodyErr) {
		return fiber.StatusBadRequest, "Invalid request body"
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict, "Email already registered"
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrPostNotFound):
		return fiber.StatusNotFound, "Post not found"
	case errors.Is(err, services.ErrProfileNotFound):
		return fiber.StatusNotFound, "Profile not found"
	case errors.Is(err, services.ErrPostUpdateForbidden):
		return fiber.StatusForbidden, "You can only update your own posts"
	case errors.Is(err, services.ErrPostDeleteForbidden):
		return fiber.StatusForbidden, "You can only delete your own posts"
	}

	return fiber.StatusInternalServerError, "Internal server error"
}

// requestValidator decodes and validates request bodies.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	validate := validator.New()
	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterCustomTypeFunc(models.ValidationValue, models.NullableString{})
	return &requestValidator{validate: validate}
}

// bind parses the JSON body into out and validates it.
func (v *requestValidator) bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &bodyError{err: err}
	}
	if err := v.validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}
