// Package openweather is a thin client for the OpenWeather REST API, fixed to
// the Kisii County service region.
package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/akilima/akilima/internal/config"
)

// Kisii County coordinates; all queries are pinned here.
const (
	RegionName    = "Kisii County"
	RegionCountry = "Kenya"
	RegionLat     = -0.6817
	RegionLon     = 34.7680
)

// ErrNotConfigured indicates the API key is missing.
var ErrNotConfigured = errors.New("weather api key not configured")

// Client exposes the OpenWeather operations used by the application.
type Client interface {
	Current(ctx context.Context) (*CurrentWeather, error)
	Forecast(ctx context.Context) (*ForecastFeed, error)
}

// WeatherDesc is one entry of the provider's weather descriptor array.
type WeatherDesc struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentWeather mirrors the fields consumed from the current-conditions
// endpoint.
type CurrentWeather struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Weather []WeatherDesc `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// ForecastEntry is one 3-hourly forecast point.
type ForecastEntry struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []WeatherDesc `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		ThreeHour float64 `json:"3h"`
	} `json:"rain"`
}

// ForecastFeed mirrors the 5-day/3-hour forecast endpoint.
type ForecastFeed struct {
	List []ForecastEntry `json:"list"`
}

// apiError represents an OpenWeather error payload.
type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an OpenWeather API client using the provided configuration
// values.
func NewClient(cfg config.WeatherConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetTimeout(10 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
	}
}

// Current fetches present conditions for the region in metric units.
func (c *APIClient) Current(ctx context.Context) (*CurrentWeather, error) {
	result := new(CurrentWeather)
	if err := c.get(ctx, "/weather", result); err != nil {
		return nil, err
	}
	return result, nil
}

// Forecast fetches the 3-hourly forecast feed for the region in metric units.
func (c *APIClient) Forecast(ctx context.Context) (*ForecastFeed, error) {
	result := new(ForecastFeed)
	if err := c.get(ctx, "/forecast", result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) get(ctx context.Context, path string, result any) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%.4f", RegionLat),
			"lon":   fmt.Sprintf("%.4f", RegionLon),
			"units": "metric",
			"appid": c.apiKey,
		}).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("openweather api error: status=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	return nil
}
