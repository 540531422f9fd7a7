package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-backend/internal/application/command"
	"school-backend/internal/application/interfaces"
)

type AuthHandler struct {
	userService interfaces.UserService
}

func NewAuthHandler(userService interfaces.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.userService.LoginUser(c.Request().Context(), &command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
