package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Prashgeek/TenWeather/internal/location"
	"github.com/sony/gobreaker"
)

const defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingClient implements location.Geocoder against the Open-Meteo
// geocoding API. The API is key-less.
type GeocodingClient struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewGeocodingClient creates a geocoding client. baseURL may be empty to
// use the public Open-Meteo endpoint.
func NewGeocodingClient(client *http.Client, baseURL string) *GeocodingClient {
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}

	return &GeocodingClient{
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newCircuitBreaker("openmeteo-geocoding"),
	}
}

// Search performs an unrestricted forward search.
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) ([]location.Candidate, error) {
	return c.search(ctx, name, "", count)
}

// SearchCountry restricts the search to a single country.
func (c *GeocodingClient) SearchCountry(ctx context.Context, name, countryCode string, count int) ([]location.Candidate, error) {
	return c.search(ctx, name, countryCode, count)
}

func (c *GeocodingClient) search(ctx context.Context, name, countryCode string, count int) ([]location.Candidate, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", name)
		values.Set("count", strconv.Itoa(count))
		values.Set("language", "en")
		values.Set("format", "json")
		if countryCode != "" {
			values.Set("countryCode", countryCode)
		}

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

	var payload struct {
		Results []location.Candidate `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Results, nil
}
