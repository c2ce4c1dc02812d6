package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"promocodeapi/docs"
)

// Swagger serves the API docs with host and scheme taken from the request.
// defaultHost is advertised when the request carries no Host header.
func Swagger(defaultHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = swaggerHost(c.Get("Host"), defaultHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

func swaggerHost(requestHost, defaultHost string) string {
	if requestHost != "" {
		return requestHost
	}
	return defaultHost
}
