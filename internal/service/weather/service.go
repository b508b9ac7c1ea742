package weather

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/pkg/clients/openweather"
)

// Entries per day in the provider's 3-hourly feed, and the number of days the
// distilled forecast covers.
const (
	forecastStride = 8
	forecastDays   = 5
)

// Service composes the upstream weather provider with the advisory rule set.
type Service struct {
	client openweather.Client
	logger *zap.Logger
}

// NewService wires a new weather service instance.
func NewService(client openweather.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Report returns current conditions plus a distilled daily forecast for the
// region.
func (s *Service) Report(ctx context.Context) (models.WeatherReport, error) {
	current, err := s.client.Current(ctx)
	if err != nil {
		return models.WeatherReport{}, s.upstreamFailure("current conditions", err)
	}

	feed, err := s.client.Forecast(ctx)
	if err != nil {
		return models.WeatherReport{}, s.upstreamFailure("forecast", err)
	}

	report := models.WeatherReport{
		Current:  currentConditions(current),
		Forecast: dailyForecast(feed),
		Location: models.RegionInfo{
			Name:    openweather.RegionName,
			Country: openweather.RegionCountry,
			Lat:     openweather.RegionLat,
			Lon:     openweather.RegionLon,
		},
	}

	return report, nil
}

// Advisory fetches the current observation and runs the rule set over it.
func (s *Service) Advisory(ctx context.Context) (models.AdvisoryReport, error) {
	current, err := s.client.Current(ctx)
	if err != nil {
		return models.AdvisoryReport{}, s.upstreamFailure("current conditions", err)
	}

	obs := models.WeatherObservation{
		Temperature:      current.Main.Temp,
		Humidity:         current.Main.Humidity,
		RainfallLastHour: current.Rain.OneHour,
	}

	return models.AdvisoryReport{
		Temperature: int(math.Round(obs.Temperature)),
		Humidity:    obs.Humidity,
		Rainfall:    obs.RainfallLastHour,
		Advisories:  Evaluate(obs),
	}, nil
}

// upstreamFailure logs the underlying cause and surfaces the failure as
// upstream-unavailable. The provider is never retried here.
func (s *Service) upstreamFailure(what string, err error) error {
	s.logger.Error("weather provider call failed", zap.String("call", what), zap.Error(err))
	return fmt.Errorf("fetch %s: %w", what, apperr.ErrUpstreamUnavailable)
}

func currentConditions(current *openweather.CurrentWeather) models.CurrentConditions {
	out := models.CurrentConditions{
		Temp:      int(math.Round(current.Main.Temp)),
		FeelsLike: int(math.Round(current.Main.FeelsLike)),
		Humidity:  current.Main.Humidity,
		Pressure:  current.Main.Pressure,
		WindSpeed: current.Wind.Speed,
		Sunrise:   current.Sys.Sunrise,
		Sunset:    current.Sys.Sunset,
	}
	if len(current.Weather) > 0 {
		out.Weather = current.Weather[0].Main
		out.Description = current.Weather[0].Description
		out.Icon = current.Weather[0].Icon
	}
	return out
}

// dailyForecast picks one representative entry per day out of the 3-hourly
// feed, up to forecastDays days.
func dailyForecast(feed *openweather.ForecastFeed) []models.DailyForecast {
	daily := make([]models.DailyForecast, 0, forecastDays)

	for i := 0; i < len(feed.List) && len(daily) < forecastDays; i += forecastStride {
		entry := feed.List[i]

		day := models.DailyForecast{
			Date:      strings.SplitN(entry.DtTxt, " ", 2)[0],
			TempMin:   int(math.Round(entry.Main.TempMin)),
			TempMax:   int(math.Round(entry.Main.TempMax)),
			Humidity:  entry.Main.Humidity,
			WindSpeed: entry.Wind.Speed,
			Rainfall:  entry.Rain.ThreeHour,
		}
		if len(entry.Weather) > 0 {
			day.Weather = entry.Weather[0].Main
			day.Description = entry.Weather[0].Description
			day.Icon = entry.Weather[0].Icon
		}

		daily = append(daily, day)
	}

	return daily
}
