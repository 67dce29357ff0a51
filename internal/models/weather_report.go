package models

// Coordinates of a city as reported by the weather provider.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherReport is the reshaped current-weather answer of /api/weather.
type WeatherReport struct {
	City        string      `json:"city"`
	Country     string      `json:"country,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Temp        float64     `json:"temp"`
	FeelsLike   float64     `json:"feels_like"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	WindSpeed   float64     `json:"wind_speed"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	RainVolume  float64     `json:"rain_volume"`
}
