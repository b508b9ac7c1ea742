package weather

import "github.com/akilima/akilima/internal/domain/models"

// rule pairs a predicate with the advisory it produces. Rules are evaluated
// independently; every matching rule fires.
type rule struct {
	matches func(models.WeatherObservation) bool
	tag     string
	message string
}

// advisoryRules is the full rule set, in evaluation order. Adding or removing
// a rule is a data change, not a control-flow change.
var advisoryRules = []rule{
	{
		matches: func(o models.WeatherObservation) bool { return o.Temperature > 28 },
		tag:     models.AdvisoryWarning,
		message: "High temperature detected. Ensure adequate irrigation for crops.",
	},
	{
		matches: func(o models.WeatherObservation) bool { return o.Humidity > 80 },
		tag:     models.AdvisoryCaution,
		message: "High humidity levels. Monitor crops for fungal diseases.",
	},
	{
		matches: func(o models.WeatherObservation) bool { return o.RainfallLastHour > 0 },
		tag:     models.AdvisoryInfo,
		message: "Rainfall detected. Good conditions for planting and growth.",
	},
	{
		matches: func(o models.WeatherObservation) bool {
			return o.Temperature >= 18 && o.Temperature <= 25 && o.Humidity >= 60 && o.Humidity <= 80
		},
		tag:     models.AdvisorySuccess,
		message: "Optimal conditions for tea and coffee cultivation.",
	},
}

// Evaluate maps one observation to the advisories whose conditions it meets.
// It is a pure function: no shared state, no side effects. An observation
// matching nothing yields an empty slice.
func Evaluate(obs models.WeatherObservation) []models.WeatherAdvisory {
	advisories := make([]models.WeatherAdvisory, 0, len(advisoryRules))
	for _, r := range advisoryRules {
		if r.matches(obs) {
			advisories = append(advisories, models.WeatherAdvisory{Type: r.tag, Message: r.message})
		}
	}
	return advisories
}
