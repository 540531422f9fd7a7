package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-backend/internal/application/interfaces"
)

type SubjectHandler struct {
	subjectService interfaces.SubjectService
}

func NewSubjectHandler(subjectService interfaces.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

func (h *SubjectHandler) ListSubjectsFaculty(c echo.Context) error {
	result, err := h.subjectService.ListSubjectsFaculty(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
