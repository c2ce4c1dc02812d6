package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"promocodeapi/internal/model"
	"promocodeapi/internal/service"
)

// ListEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} service.EmployeeShortResponse
// @Router /api/v1/employees [get]
func ListEmployees(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetEmployee godoc
// @Summary Get employee by id
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Success 200 {object} service.EmployeeResponse
// @Failure 400 {object} errorPayload
// @Failure 404
// @Router /api/v1/employees/{id} [get]
func GetEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return employeeError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body model.Employee true "Employee"
// @Success 201 {object} service.EmployeeResponse
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/v1/employees [post]
func CreateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e model.Employee
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Create(c.UserContext(), &e)
		if err != nil {
			return employeeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// UpdateEmployee godoc
// @Summary Update employee identified by the payload id
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body model.Employee true "Employee with id"
// @Success 200 {object} service.EmployeeResponse
// @Failure 400 {object} errorPayload
// @Failure 404
// @Router /api/v1/employees [put]
func UpdateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e model.Employee
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if e.ID == uuid.Nil {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "id is required")
		}
		res, err := svc.Update(c.UserContext(), e.ID, &e)
		if err != nil {
			return employeeError(c, err)
		}
		return c.JSON(res)
	}
}

// UpdateEmployeeByID godoc
// @Summary Update employee identified by the path id
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Param employee body model.Employee true "Employee fields"
// @Success 200 {object} service.EmployeeShortResponse
// @Failure 400 {object} errorPayload
// @Failure 404
// @Router /api/v1/employees/{id} [put]
func UpdateEmployeeByID(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var e model.Employee
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Update(c.UserContext(), id, &e)
		if err != nil {
			return employeeError(c, err)
		}
		return c.JSON(res.Short())
	}
}

// DeleteEmployee godoc
// @Summary Remove employee
// @Description Succeeds whether or not the employee existed.
// @Tags employees
// @Param id path string true "Employee ID" format(uuid)
// @Success 200
// @Failure 400 {object} errorPayload
// @Router /api/v1/employees/{id} [delete]
func DeleteEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Remove(c.UserContext(), id); err != nil {
			return employeeError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// ExportEmployees godoc
// @Summary Export the employee directory to object storage
// @Tags employees
// @Produce json
// @Success 201 {object} service.ExportResult
// @Failure 503 {object} errorPayload
// @Router /api/v1/employees/export [post]
func ExportEmployees(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrExportDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "EXPORT_DISABLED", "export storage is not configured")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func employeeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return notFound(c)
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "employee already exists")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
