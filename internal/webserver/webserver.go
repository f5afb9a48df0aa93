package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/model"
)

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Version,
		ErrorHandler: errorHandler,
	})

	routes(app, controllers, cfg.JwtSecret)

	return app
}

// errorHandler maps domain errors to HTTP statuses so controllers can
// return them untouched.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrResourceNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, model.ErrUserAlreadyExists),
		errors.Is(err, model.ErrUserAlreadyRegistered),
		errors.Is(err, model.ErrInvalidRoleTransition),
		errors.Is(err, model.ErrInvalidSubmissionState):
		code = fiber.StatusConflict
	case errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrTokenAlreadyUsed):
		code = fiber.StatusUnauthorized
	case errors.Is(err, model.ErrSelfDelete):
		code = fiber.StatusForbidden
	case errors.Is(err, model.ErrWeakPassword),
		errors.Is(err, model.ErrInvalidEmail):
		code = fiber.StatusUnprocessableEntity
	default:
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
