package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-api/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	api := app.Group("/api")

	api.Get("/weather", func(c *fiber.Ctx) error {
		req, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "location query parameter is required")
		}

		resp, err := service.GetWeather(c.Context(), req.Location)
		if err != nil {
			if errors.Is(err, weather.ErrLocationNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "location not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build weather response")
		}

		return c.JSON(resp)
	})
}

// weatherQuery holds the query parameters of the weather endpoint.
type weatherQuery struct {
	Location string `validate:"required"`
}

func parseWeatherQuery(c *fiber.Ctx) (weatherQuery, error) {
	var q weatherQuery

	q.Location = c.Query("location")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
