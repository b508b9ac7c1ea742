package models

// WeatherObservation is a single normalized reading for the service region.
// It is consumed once per advisory request and carries no identity.
type WeatherObservation struct {
	Temperature      float64 `json:"temperature"` // °C
	Humidity         float64 `json:"humidity"`    // percent
	RainfallLastHour float64 `json:"rainfall"`    // mm, 0 when absent upstream
}

// Advisory tags ordered from most to least urgent.
const (
	AdvisoryWarning = "warning"
	AdvisoryCaution = "caution"
	AdvisoryInfo    = "info"
	AdvisorySuccess = "success"
)

// WeatherAdvisory is one fired rule's output.
type WeatherAdvisory struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CurrentConditions summarizes the present weather for the region.
type CurrentConditions struct {
	Temp        int     `json:"temp"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"windSpeed"`
	Weather     string  `json:"weather"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
}

// DailyForecast is one distilled day out of the provider's 3-hourly feed.
type DailyForecast struct {
	Date        string  `json:"date"`
	TempMin     int     `json:"tempMin"`
	TempMax     int     `json:"tempMax"`
	Weather     string  `json:"weather"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Rainfall    float64 `json:"rainfall"`
}

// RegionInfo identifies the fixed service area.
type RegionInfo struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherReport is the full snapshot returned by the weather endpoint.
type WeatherReport struct {
	Current  CurrentConditions `json:"current"`
	Forecast []DailyForecast   `json:"forecast"`
	Location RegionInfo        `json:"location"`
}

// AdvisoryReport pairs the observation with the advisories it produced.
type AdvisoryReport struct {
	Temperature int               `json:"temperature"`
	Humidity    float64           `json:"humidity"`
	Rainfall    float64           `json:"rainfall"`
	Advisories  []WeatherAdvisory `json:"advisories"`
}
