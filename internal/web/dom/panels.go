//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/Nazarious-ucu/city-dashboard/internal/dashboard"
)

const (
	highlightColor = "#10b981"
	borderColor    = "#e5e7eb"
)

// Page implements every dashboard view on top of the document.
type Page struct {
	Document
}

func NewPage(doc Document) *Page {
	return &Page{Document: doc}
}

func (p *Page) ShowWeather(v dashboard.WeatherView) {
	p.setText(idTemp, v.Temp)
	p.setText(idDescription, v.Description)
	p.setText(idFeelsLike, v.FeelsLike)
	p.setText(idHumidity, v.Humidity)
	p.setText(idWind, v.Wind)
	p.setText(idPressure, v.Pressure)
	p.setText(idCountryCode, v.Country)
	p.setText(idRain, v.Rain)
	p.setText(idCoords, v.Coords)

	if v.IconURL == "" {
		return
	}
	if icon := p.byID(idIcon); icon.Truthy() {
		icon.Set("src", v.IconURL)
		icon.Get("style").Set("display", "block")
	}
}

func (p *Page) ShowNewsMessage(msg string) {
	grid := p.byID(idNewsGrid)
	if !grid.Truthy() {
		return
	}
	grid.Set("innerHTML", "")
	empty := p.create("div", "empty-state")
	empty.Set("textContent", msg)
	grid.Call("appendChild", empty)
}

func (p *Page) ShowNews(cards []dashboard.NewsCard) {
	grid := p.byID(idNewsGrid)
	if !grid.Truthy() {
		return
	}
	grid.Set("innerHTML", "")
	for _, card := range cards {
		grid.Call("appendChild", p.newsItem(card))
	}
}

func (p *Page) newsItem(card dashboard.NewsCard) js.Value {
	item := p.create("div", "news-item")

	img := p.create("img", "news-image")
	img.Set("src", card.ImageURL)
	img.Set("alt", "News")
	item.Call("appendChild", img)

	content := p.create("div", "news-content")

	link := p.create("a", "")
	link.Set("href", card.URL)
	link.Set("target", "_blank")
	link.Set("rel", "noopener noreferrer")
	link.Set("textContent", card.Title)
	heading := p.create("h4", "")
	heading.Call("appendChild", link)
	content.Call("appendChild", heading)

	date := p.create("span", "news-date")
	date.Set("textContent", card.Date)
	content.Call("appendChild", date)

	item.Call("appendChild", content)
	return item
}

func (p *Page) HasOption(code string) bool {
	sel := p.byID(idToCurrency)
	if !sel.Truthy() {
		return false
	}
	return sel.Call("querySelector", `option[value="`+code+`"]`).Truthy()
}

func (p *Page) SelectTarget(code string) {
	if sel := p.byID(idToCurrency); sel.Truthy() {
		sel.Set("value", code)
	}
}

func (p *Page) Highlight(on bool) {
	sel := p.byID(idToCurrency)
	if !sel.Truthy() {
		return
	}
	color := borderColor
	if on {
		color = highlightColor
	}
	sel.Get("style").Set("borderColor", color)
}

func (p *Page) ShowResult(text string) {
	p.setText(idResult, text)
}

func (p *Page) Alert(msg string) {
	js.Global().Call("alert", msg)
}
