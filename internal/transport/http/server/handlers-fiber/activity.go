package handlers_fiber

import (
	"fmt"
	"net/http"
	"net/url"

	"school-activities-service/internal/api"
	"school-activities-service/internal/entities"
	"school-activities-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

const landingPage = "/static/index.html"

// Register wires the activity directory routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.GetRoot)
	app.Get("/activities", h.GetActivities)
	app.Post("/activities/:activity/signup", h.PostSignup)
	app.Delete("/activities/:activity/unregister", h.DeleteUnregister)
}

// GetRoot redirects to the static landing page.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Redirect(landingPage, fiber.StatusTemporaryRedirect)
}

// GetActivities returns every activity keyed by name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	list, err := h.uc.ListActivities(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDirectory(list))
}

// PostSignup adds the email query parameter to the activity roster.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	name, err := activityParam(c)
	if err != nil {
		return writeError(c, err)
	}
	email := c.Query("email")

	a, err := h.uc.Signup(c.Context(), name, email)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, a.Name),
	})
}

// DeleteUnregister removes the email query parameter from the activity roster.
func (h *Handler) DeleteUnregister(c *fiber.Ctx) error {
	name, err := activityParam(c)
	if err != nil {
		return writeError(c, err)
	}
	email := c.Query("email")

	a, err := h.uc.Unregister(c.Context(), name, email)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, a.Name),
	})
}

// activityParam decodes the :activity path segment.
func activityParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("activity"))
	if err != nil {
		return "", fmt.Errorf("%w: malformed activity name", entities.ErrInvalidArgument)
	}
	return name, nil
}
