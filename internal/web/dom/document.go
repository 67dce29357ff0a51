//go:build js && wasm

// Package dom binds the dashboard to the browser page through syscall/js.
package dom

import "syscall/js"

// Element ids used by web/static/index.html.
const (
	idTemp        = "temp"
	idDescription = "description"
	idFeelsLike   = "feelsLike"
	idHumidity    = "humidity"
	idWind        = "wind"
	idPressure    = "pressure"
	idCountryCode = "countryCode"
	idRain        = "rain"
	idCoords      = "coordsText"
	idIcon        = "weatherIcon"
	idNewsGrid    = "newsGrid"
	idToCurrency  = "toCurrency"
	idFrom        = "fromCurrency"
	idAmount      = "amount"
	idResult      = "conversionResult"
	idSearchBtn   = "searchBtn"
	idCityInput   = "cityInput"
	idConvertBtn  = "convertBtn"
	MapElementID  = "map"
)

type Document struct {
	doc js.Value
}

func NewDocument() Document {
	return Document{doc: js.Global().Get("document")}
}

// Origin is the page origin, used as the backend base URL.
func Origin() string {
	return js.Global().Get("location").Get("origin").String()
}

func (d Document) byID(id string) js.Value {
	return d.doc.Call("getElementById", id)
}

func (d Document) setText(id, text string) {
	if el := d.byID(id); el.Truthy() {
		el.Set("textContent", text)
	}
}

func (d Document) value(id string) string {
	if el := d.byID(id); el.Truthy() {
		return el.Get("value").String()
	}
	return ""
}

func (d Document) create(tag, class string) js.Value {
	el := d.doc.Call("createElement", tag)
	if class != "" {
		el.Set("className", class)
	}
	return el
}
