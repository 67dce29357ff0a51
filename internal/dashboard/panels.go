package dashboard

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
)

const (
	NewsLoading  = "Loading news..."
	NewsEmpty    = "No news found for this city."
	NewsFailed   = "Failed to load news."
	NewsNoImage  = "https://via.placeholder.com/400x200?text=No+Image"
	iconURLFmt   = "https://openweathermap.org/img/wn/%s@2x.png"
	noCountry    = "--"
	newsDateForm = "1/2/2006"

	exactDigits = 80
)

// WeatherView is a WeatherReport formatted for display.
type WeatherView struct {
	Temp        string
	Description string
	FeelsLike   string
	Humidity    string
	Wind        string
	Pressure    string
	Country     string
	Rain        string
	Coords      string
	// IconURL is empty when the report has no icon.
	IconURL string
}

func NewWeatherView(r models.WeatherReport) WeatherView {
	v := WeatherView{
		Temp:        celsius(r.Temp),
		Description: r.Description,
		FeelsLike:   celsius(r.FeelsLike),
		Humidity:    strconv.Itoa(r.Humidity) + "%",
		Wind:        number(r.WindSpeed) + " m/s",
		Pressure:    strconv.Itoa(r.Pressure) + " hPa",
		Country:     r.Country,
		Rain:        number(r.RainVolume) + " mm",
		Coords:      fixed(r.Coordinates.Lat, 1) + ", " + fixed(r.Coordinates.Lon, 1),
	}
	if v.Country == "" {
		v.Country = noCountry
	}
	if r.Icon != "" {
		v.IconURL = fmt.Sprintf(iconURLFmt, r.Icon)
	}
	return v
}

// NewsCard is one rendered headline.
type NewsCard struct {
	ImageURL string
	Title    string
	URL      string
	Date     string
}

// NewNewsCard renders the publish date in loc; an unparsable date is left blank.
func NewNewsCard(a models.NewsArticle, loc *time.Location) NewsCard {
	card := NewsCard{
		ImageURL: a.URLToImage,
		Title:    a.Title,
		URL:      a.URL,
	}
	if card.ImageURL == "" {
		card.ImageURL = NewsNoImage
	}
	if published, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
		card.Date = published.In(loc).Format(newsDateForm)
	}
	return card
}

// celsius rounds half up, so -0.5 becomes 0 and 2.5 becomes 3.
func celsius(v float64) string {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return strconv.Itoa(int(r)) + "°C"
}

// fixed rounds the exact binary value half away from zero, the way browsers
// format coordinates.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	exact := new(big.Float).SetFloat64(v).Text('f', exactDigits)
	return decimal.RequireFromString(exact).StringFixed(places)
}

func number(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
