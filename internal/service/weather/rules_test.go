package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akilima/akilima/internal/domain/models"
)

func TestEvaluate(t *testing.T) {
	t.Run("high temperature fires irrigation warning", func(t *testing.T) {
		advisories := Evaluate(models.WeatherObservation{Temperature: 30, Humidity: 50})
		require.Len(t, advisories, 1)
		assert.Equal(t, models.AdvisoryWarning, advisories[0].Type)
	})

	t.Run("optimal band fires success only", func(t *testing.T) {
		advisories := Evaluate(models.WeatherObservation{Temperature: 20, Humidity: 70})
		require.Len(t, advisories, 1)
		assert.Equal(t, models.AdvisorySuccess, advisories[0].Type)
	})

	t.Run("nothing matching yields empty list", func(t *testing.T) {
		advisories := Evaluate(models.WeatherObservation{Temperature: 20, Humidity: 50})
		assert.Empty(t, advisories)
	})

	t.Run("independent rules fire together in order", func(t *testing.T) {
		advisories := Evaluate(models.WeatherObservation{Temperature: 30, Humidity: 85, RainfallLastHour: 2})
		require.Len(t, advisories, 3)
		assert.Equal(t, models.AdvisoryWarning, advisories[0].Type)
		assert.Equal(t, models.AdvisoryCaution, advisories[1].Type)
		assert.Equal(t, models.AdvisoryInfo, advisories[2].Type)
	})

	t.Run("humidity over eighty leaves the optimal band", func(t *testing.T) {
		advisories := Evaluate(models.WeatherObservation{Temperature: 22, Humidity: 81})
		require.Len(t, advisories, 1)
		assert.Equal(t, models.AdvisoryCaution, advisories[0].Type)
	})

	t.Run("band boundaries are inclusive", func(t *testing.T) {
		for _, obs := range []models.WeatherObservation{
			{Temperature: 18, Humidity: 60},
			{Temperature: 25, Humidity: 80},
		} {
			advisories := Evaluate(obs)
			require.Len(t, advisories, 1)
			assert.Equal(t, models.AdvisorySuccess, advisories[0].Type)
		}
	})
}
