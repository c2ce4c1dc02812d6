package handler

import (
	"github.com/gofiber/fiber/v2"

	"promocodeapi/internal/service"
)

// ListRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} service.RoleItemResponse
// @Router /api/v1/roles [get]
func ListRoles(svc service.RoleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
