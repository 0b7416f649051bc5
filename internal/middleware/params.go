package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrNumericParam is returned when a path identifier is not a non-negative integer.
var ErrNumericParam = fiber.NewError(fiber.StatusBadRequest, "Validation failed (numeric string is expected)")

// IntParams parses the named route parameters as unsigned integers before the
// handler runs. Parsed values are read back with ParamID.
func IntParams(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, name := range names {
			id, err := strconv.ParseUint(c.Params(name), 10, 0)
			if err != nil {
				return ErrNumericParam
			}
			c.Locals(localKey(name), uint(id))
		}
		return c.Next()
	}
}

// ParamID returns a parameter parsed by IntParams. It panics when the route
// was not guarded by IntParams for that name.
func ParamID(c *fiber.Ctx, name string) uint {
	return c.Locals(localKey(name)).(uint)
}

func localKey(name string) string {
	return "param:" + name
}
