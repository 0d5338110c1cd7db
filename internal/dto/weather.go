package dto

// OpenWeatherResponse is the subset of the OpenWeatherMap current weather
// payload the fortune page uses.
type OpenWeatherResponse struct {
	Weather []OpenWeatherCondition `json:"weather"`
	Main    OpenWeatherMain        `json:"main"`
}

type OpenWeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OpenWeatherMain struct {
	Temp *float64 `json:"temp"`
}
