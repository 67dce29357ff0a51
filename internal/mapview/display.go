package mapview

import (
	"fmt"
	"html"
	"strconv"
	"sync"
	"time"

	"github.com/Nazarious-ucu/city-dashboard/internal/timer"
)

const (
	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = "© OpenStreetMap"

	overviewLat  = 20
	overviewLon  = 0
	overviewZoom = 2
	locationZoom = 12

	resizeDelay = 200 * time.Millisecond
)

// Widget is the external map implementation, Leaflet in the browser.
type Widget interface {
	SetView(lat, lon float64, zoom int)
	AddTileLayer(urlTemplate, attribution string)
	AddMarker(lat, lon float64, popupHTML string) Marker
	InvalidateSize()
}

// Marker is a pin placed by AddMarker with its popup already open.
type Marker interface {
	Remove()
}

// Display keeps at most one marker on the widget.
type Display struct {
	mu     sync.Mutex
	widget Widget
	sched  timer.Scheduler
	marker Marker
	resize timer.Timer
}

func New(widget Widget, sched timer.Scheduler) *Display {
	return &Display{widget: widget, sched: sched}
}

func (d *Display) Initialize() {
	d.widget.SetView(overviewLat, overviewLon, overviewZoom)
	d.widget.AddTileLayer(TileURL, TileAttribution)
}

// ShowLocation recenters on the point, replaces the marker and schedules a
// size recomputation once the page has reflowed.
func (d *Display) ShowLocation(lat, lon float64, label string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.widget.SetView(lat, lon, locationZoom)

	if d.marker != nil {
		d.marker.Remove()
	}
	d.marker = d.widget.AddMarker(lat, lon, PopupHTML(label, lat, lon))

	if d.resize != nil {
		d.resize.Stop()
	}
	d.resize = d.sched.AfterFunc(resizeDelay, d.widget.InvalidateSize)
}

func PopupHTML(label string, lat, lon float64) string {
	return fmt.Sprintf("<b>%s</b><br>Lat: %s, Lon: %s",
		html.EscapeString(label),
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	)
}
