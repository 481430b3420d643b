package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playschool-a2z/management-api/internal/api/metrics"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for student record management.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /api/students — all active students.
//
// @Summary      List active students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   studentResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponses(students))
}

// Get handles GET /api/students/:id.
//
// @Summary      Get a student by ID
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student ID"
// @Success      200  {object}  studentResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Register handles POST /api/students/register.
//
// @Summary      Register a new student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studentRequest  true  "Student details"
// @Success      201   {object}  studentResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/students/register [post]
func (h *StudentHandler) Register(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.Register(c.Request().Context(), principal.Username, toStudentInput(req))
	if err != nil {
		return err
	}

	metrics.StudentsRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, toStudentResponse(student))
}

// Update handles PUT /api/students/:id.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Student ID"
// @Param        body  body      studentRequest  true  "Student details"
// @Success      200   {object}  studentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.Update(c.Request().Context(), c.Param("id"), toStudentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Deactivate handles DELETE /api/students/:id — soft delete.
//
// @Summary      Deactivate a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [delete]
func (h *StudentHandler) Deactivate(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), principal.Username, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Student deactivated successfully"})
}

// Reactivate handles PUT /api/students/:id/reactivate.
//
// @Summary      Reactivate a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student ID"
// @Success      200  {object}  studentResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id}/reactivate [put]
func (h *StudentHandler) Reactivate(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	student, err := h.service.Reactivate(c.Request().Context(), principal.Username, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Search handles GET /api/students/search?name=.
//
// @Summary      Search students by name
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {array}   studentResponse
// @Router       /api/students/search [get]
func (h *StudentHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}

	students, err := h.service.SearchByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponses(students))
}

// ByParentEmail handles GET /api/students/parent/:email.
//
// @Summary      List students by parent email
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Parent email"
// @Success      200    {array}   studentResponse
// @Router       /api/students/parent/{email} [get]
func (h *StudentHandler) ByParentEmail(c echo.Context) error {
	students, err := h.service.FindByParentEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponses(students))
}

// Count handles GET /api/students/count and the public variant.
//
// @Summary      Count active students
// @Tags         students
// @Produce      json
// @Success      200  {object}  countResponse
// @Router       /api/students/count [get]
func (h *StudentHandler) Count(c echo.Context) error {
	n, err := h.service.CountActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}
