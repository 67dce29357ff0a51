package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Nazarious-ucu/city-dashboard/internal/currency"
	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/timer"
)

const (
	ConvertPending = "..."
	ConvertFailed  = "Error"

	fallbackCurrency = "USD"
	highlightDelay   = time.Second
)

var (
	errInvalidAmount = errors.New("invalid amount")
	errMissingRate   = errors.New("missing rate")
)

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type backend interface {
	Weather(ctx context.Context, city string) (models.WeatherReport, error)
	News(ctx context.Context, query string) ([]models.NewsArticle, error)
	Rates(ctx context.Context, base string) (models.ExchangeRateTable, error)
}

type WeatherPanel interface {
	ShowWeather(v WeatherView)
}

type NewsPanel interface {
	ShowNews(cards []NewsCard)
	// ShowNewsMessage replaces the panel content with a placeholder line.
	ShowNewsMessage(msg string)
}

type MapDisplay interface {
	ShowLocation(lat, lon float64, label string)
}

// Converter is the currency converter form.
type Converter interface {
	HasOption(code string) bool
	SelectTarget(code string)
	Highlight(on bool)
	ShowResult(text string)
}

type Alerter interface {
	Alert(msg string)
}

// Views groups everything the controller renders into.
type Views struct {
	Weather   WeatherPanel
	News      NewsPanel
	Map       MapDisplay
	Converter Converter
	Alerter   Alerter
}

// Controller owns the dashboard session: current city, selected target
// currency and the pending highlight revert. Network calls are made without
// holding mu.
type Controller struct {
	api    backend
	table  currency.Table
	views  Views
	sched  timer.Scheduler
	loc    *time.Location
	logger zerolog.Logger

	mu        sync.Mutex
	state     State
	city      string
	target    string
	search    uint64
	highlight timer.Timer
}

func NewController(
	api backend,
	table currency.Table,
	views Views,
	sched timer.Scheduler,
	loc *time.Location,
	logger zerolog.Logger,
) *Controller {
	return &Controller{
		api:    api,
		table:  table,
		views:  views,
		sched:  sched,
		loc:    loc,
		logger: logger,
		state:  Idle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) City() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.city
}

func (c *Controller) SelectedCurrency() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// SetSelectedCurrency records a manual choice in the converter.
func (c *Controller) SetSelectedCurrency(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = code
}

// Search loads weather for city and, on success, the map, currency and news.
// Results of a search superseded by a newer one are dropped.
func (c *Controller) Search(ctx context.Context, city string) {
	if city == "" {
		return
	}

	c.mu.Lock()
	c.search++
	seq := c.search
	c.city = city
	c.state = Loading
	c.mu.Unlock()

	report, err := c.api.Weather(ctx, city)
	if !c.current(seq) {
		return
	}
	if err != nil {
		c.setState(seq, Failed)
		c.logger.Error().Err(err).Str("city", city).Msg("weather request failed")
		c.views.Alerter.Alert(err.Error())
		return
	}

	c.views.Weather.ShowWeather(NewWeatherView(report))
	c.views.Map.ShowLocation(report.Coordinates.Lat, report.Coordinates.Lon, city)
	c.AutoSelectCurrency(report.Country)
	c.setState(seq, Loaded)

	c.loadNews(ctx, seq, city)
}

func (c *Controller) loadNews(ctx context.Context, seq uint64, query string) {
	c.views.News.ShowNewsMessage(NewsLoading)

	articles, err := c.api.News(ctx, query)
	if !c.current(seq) {
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("query", query).Msg("news request failed")
		c.views.News.ShowNewsMessage(NewsFailed)
		return
	}
	if len(articles) == 0 {
		c.views.News.ShowNewsMessage(NewsEmpty)
		return
	}

	cards := make([]NewsCard, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, NewNewsCard(a, c.loc))
	}
	c.views.News.ShowNews(cards)
}

// AutoSelectCurrency points the converter at the country's currency. Unknown
// countries leave the selection alone; a currency the converter does not
// offer falls back to USD.
func (c *Controller) AutoSelectCurrency(country string) {
	if country == "" {
		return
	}
	code, ok := c.table.Lookup(country)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.views.Converter.HasOption(code) {
		c.target = fallbackCurrency
		c.views.Converter.SelectTarget(fallbackCurrency)
		return
	}

	c.target = code
	c.views.Converter.SelectTarget(code)
	c.views.Converter.Highlight(true)

	if c.highlight != nil {
		c.highlight.Stop()
	}
	c.highlight = c.sched.AfterFunc(highlightDelay, func() {
		c.views.Converter.Highlight(false)
	})
}

// Convert shows amount*rate[to] with two decimals, or "Error".
func (c *Controller) Convert(ctx context.Context, amount, from, to string) {
	c.views.Converter.ShowResult(ConvertPending)

	total, err := c.convert(ctx, amount, from, to)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("amount", amount).
			Str("from", from).
			Str("to", to).
			Msg("conversion failed")
		c.views.Converter.ShowResult(ConvertFailed)
		return
	}

	c.views.Converter.ShowResult(total.StringFixed(2) + " " + to)
}

func (c *Controller) convert(ctx context.Context, amount, from, to string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || value.IsNegative() {
		return decimal.Zero, errInvalidAmount
	}

	table, err := c.api.Rates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := table.Rate(to)
	if !ok {
		return decimal.Zero, errMissingRate
	}

	return value.Mul(decimal.NewFromFloat(rate)), nil
}

func (c *Controller) current(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search == seq
}

func (c *Controller) setState(seq uint64, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.search == seq {
		c.state = s
	}
}
