package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Prashgeek/TenWeather/internal/location"
)

var validate = validator.New()

// Forecaster is the outbound forecast provider the weather endpoint
// proxies to. Its response body is forwarded verbatim.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, locations *location.Service, forecaster Forecaster) {
	api := app.Group("/api")

	api.Get("/geocode", func(c *fiber.Ctx) error {
		term, err := parseTermQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		results := locations.Search(c.Context(), term)
		if results == nil {
			results = []location.Candidate{}
		}
		return c.JSON(fiber.Map{"results": results})
	})

	api.Get("/locations", func(c *fiber.Ctx) error {
		term, err := parseTermQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		suggestions := locations.Suggestions(c.Context(), term)
		if suggestions == nil {
			suggestions = []location.Suggestion{}
		}
		return c.JSON(fiber.Map{"suggestions": suggestions})
	})

	api.Get("/reverse-geocode", func(c *fiber.Ctx) error {
		coords, err := parseCoordQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := locations.Reverse(c.Context(), coords.Lat, coords.Lon)
		return c.JSON(fiber.Map{"location": loc})
	})

	api.Get("/weather", func(c *fiber.Ctx) error {
		coords, err := parseCoordQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		body, err := forecaster.Forecast(c.Context(), coords.Lat, coords.Lon)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "weather provider unavailable")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	})
}

// termQuery holds the free-text search term.
type termQuery struct {
	Q string `validate:"required"`
}

func parseTermQuery(c *fiber.Ctx) (string, error) {
	q := termQuery{Q: strings.TrimSpace(c.Query("q"))}

	if err := validate.Struct(q); err != nil {
		return "", errors.New("missing query param q")
	}
	return q.Q, nil
}

// coordQuery holds a validated coordinate pair.
type coordQuery struct {
	Lat float64 `validate:"min=-90,max=90"`
	Lon float64 `validate:"min=-180,max=180"`
}

func parseCoordQuery(c *fiber.Ctx) (coordQuery, error) {
	var q coordQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("invalid lat parameter")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("invalid lon parameter")
	}

	q.Lat = lat
	q.Lon = lon

	if err := validate.Struct(q); err != nil {
		return q, errors.New("lat/lon out of range")
	}
	return q, nil
}
