package models

const (
	WeatherUnavailableCondition   = "情報取得エラー"
	WeatherUnavailableTemperature = "--"
)

// Weather is what the fortune page shows for a city. Temperature is a
// rounded Celsius value rendered as text so the placeholder fits the same field.
type Weather struct {
	City        string `json:"city"`
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	IconURL     string `json:"icon_url"`
}

func PlaceholderWeather(city string) Weather {
	return Weather{
		City:        city,
		Condition:   WeatherUnavailableCondition,
		Temperature: WeatherUnavailableTemperature,
	}
}

func (w Weather) Available() bool {
	return w.Temperature != WeatherUnavailableTemperature
}
