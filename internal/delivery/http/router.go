package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school-backend/internal/application/interfaces"
	"school-backend/internal/delivery/http/handler"
	"school-backend/internal/infrastructure"
	"school-backend/internal/logger"
)

type RouterDeps struct {
	UserService    interfaces.UserService
	SubjectService interfaces.SubjectService
	RateLimiter    *infrastructure.RateLimiter
	Log            *logger.Logger
}

func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(deps.Log)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	if deps.RateLimiter != nil {
		e.Use(rateLimitMiddleware(deps.RateLimiter))
	}
	e.Use(MetricsMiddleware())

	userHandler := handler.NewUserHandler(deps.UserService)
	authHandler := handler.NewAuthHandler(deps.UserService)
	subjectHandler := handler.NewSubjectHandler(deps.SubjectService)

	users := e.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	e.POST("/login", authHandler.Login)
	e.GET("/subjects-faculty", subjectHandler.ListSubjectsFaculty)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func rateLimitMiddleware(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
