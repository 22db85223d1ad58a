package middleware

import (
	"strconv"

	"interview-bank/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const validatedIDKey = "validated_id"

// ValidateIDParam rejects requests whose path parameter is not a positive
// integer and stores the parsed value for handlers.
func ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return domain.ValidationErrors{domain.NewInvalidFormatError(param, raw)}
		}
		c.Locals(validatedIDKey, id)
		return c.Next()
	}
}

// ValidatedID returns the id stored by ValidateIDParam.
func ValidatedID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(validatedIDKey).(int64)
	return id, ok
}
