package handlers_fiber

import (
	"errors"
	"net/http"

	"school-activities-service/internal/api"
	"school-activities-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	detail := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		detail = "Activity not found"
	case errors.Is(err, entities.ErrAlreadySignedUp):
		status = http.StatusBadRequest
		detail = "Student already signed up for this activity"
	case errors.Is(err, entities.ErrNotSignedUp):
		status = http.StatusBadRequest
		detail = "Student is not signed up for this activity"
	case errors.Is(err, entities.ErrActivityFull):
		status = http.StatusBadRequest
		detail = "Activity is full"
	default:
		detail = err.Error()
	}

	return c.Status(status).JSON(api.ErrorResponse{Detail: detail})
}
