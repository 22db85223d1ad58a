package middleware

import (
	"interview-bank/internal/database"
	"interview-bank/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DBSession gives every request its own lazily acquired connection and
// returns it to the pool when the handler chain finishes, whatever the outcome.
func DBSession(db *sqlx.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := database.NewSession(db)
		defer func() {
			if err := session.Close(); err != nil {
				logger.Get().Warn("Failed to release request connection",
					zap.String("request_id", RequestID(c)),
					zap.Error(err),
				)
			}
		}()

		c.SetUserContext(database.WithSession(c.UserContext(), session))
		return c.Next()
	}
}
