//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/Nazarious-ucu/city-dashboard/internal/mapview"
)

// Leaflet drives the global L object loaded from the CDN.
type Leaflet struct {
	l js.Value
	m js.Value
}

func NewLeaflet(elementID string) *Leaflet {
	l := js.Global().Get("L")
	return &Leaflet{l: l, m: l.Call("map", elementID)}
}

func (w *Leaflet) SetView(lat, lon float64, zoom int) {
	w.m.Call("setView", []any{lat, lon}, zoom)
}

func (w *Leaflet) AddTileLayer(urlTemplate, attribution string) {
	w.l.Call("tileLayer", urlTemplate, map[string]any{"attribution": attribution}).
		Call("addTo", w.m)
}

func (w *Leaflet) AddMarker(lat, lon float64, popupHTML string) mapview.Marker {
	marker := w.l.Call("marker", []any{lat, lon}).
		Call("addTo", w.m).
		Call("bindPopup", popupHTML).
		Call("openPopup")
	return leafletMarker{m: w.m, marker: marker}
}

func (w *Leaflet) InvalidateSize() {
	w.m.Call("invalidateSize")
}

type leafletMarker struct {
	m      js.Value
	marker js.Value
}

func (lm leafletMarker) Remove() {
	lm.m.Call("removeLayer", lm.marker)
}
