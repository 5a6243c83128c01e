package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader — заголовок сквозного идентификатора запроса
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey — ключ идентификатора в locals запроса
	RequestIDKey = "requestId"
)

// RequestID проставляет идентификатор запроса: берёт клиентский
// из заголовка или генерирует новый
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
