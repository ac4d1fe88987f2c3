package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"
)

const defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// Fields requested from the forecast provider. The UI consumes the
// provider's schema directly, so the selection is fixed here and the body
// is forwarded untouched.
const (
	hourlyFields = "temperature_2m,relativehumidity_2m,precipitation,weathercode,windspeed_10m"
	dailyFields  = "temperature_2m_max,temperature_2m_min,weathercode"
)

// ForecastClient fetches current/hourly/daily forecasts from the
// Open-Meteo forecast API.
type ForecastClient struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewForecastClient creates a forecast client. baseURL may be empty to use
// the public Open-Meteo endpoint.
func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = defaultForecastURL
	}

	return &ForecastClient{
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newCircuitBreaker("openmeteo-forecast"),
	}
}

// Forecast returns the provider's response body verbatim for the given
// coordinates.
func (c *ForecastClient) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
		values.Set("current_weather", "true")
		values.Set("hourly", hourlyFields)
		values.Set("daily", dailyFields)
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
