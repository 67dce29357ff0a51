package mapview_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/city-dashboard/internal/mapview"
	"github.com/Nazarious-ucu/city-dashboard/internal/timer/timertest"
)

type view struct {
	lat, lon float64
	zoom     int
}

type fakeMarker struct {
	popup   string
	removed bool
}

func (m *fakeMarker) Remove() { m.removed = true }

type fakeWidget struct {
	views       []view
	tiles       []string
	attribution string
	markers     []*fakeMarker
	resized     int
}

func (w *fakeWidget) SetView(lat, lon float64, zoom int) {
	w.views = append(w.views, view{lat, lon, zoom})
}

func (w *fakeWidget) AddTileLayer(urlTemplate, attribution string) {
	w.tiles = append(w.tiles, urlTemplate)
	w.attribution = attribution
}

func (w *fakeWidget) AddMarker(_, _ float64, popupHTML string) mapview.Marker {
	m := &fakeMarker{popup: popupHTML}
	w.markers = append(w.markers, m)
	return m
}

func (w *fakeWidget) InvalidateSize() { w.resized++ }

func (w *fakeWidget) visibleMarkers() int {
	n := 0
	for _, m := range w.markers {
		if !m.removed {
			n++
		}
	}
	return n
}

func TestDisplay_Initialize(t *testing.T) {
	w := &fakeWidget{}
	mapview.New(w, timertest.New()).Initialize()

	require.Len(t, w.views, 1)
	assert.Equal(t, view{20, 0, 2}, w.views[0])
	assert.Equal(t, []string{mapview.TileURL}, w.tiles)
	assert.Equal(t, "© OpenStreetMap", w.attribution)
}

func TestDisplay_ShowLocation_SingleMarker(t *testing.T) {
	w := &fakeWidget{}
	sched := timertest.New()
	d := mapview.New(w, sched)
	d.Initialize()

	d.ShowLocation(43.2, 76.9, "Almaty")
	d.ShowLocation(48.85, 2.35, "Paris")
	d.ShowLocation(51.5, -0.1, "London")

	assert.Equal(t, view{51.5, -0.1, 12}, w.views[len(w.views)-1])
	assert.Equal(t, 1, w.visibleMarkers())
	assert.Equal(t, "<b>London</b><br>Lat: 51.5, Lon: -0.1", w.markers[2].popup)
}

func TestDisplay_ShowLocation_ResizeDebounced(t *testing.T) {
	w := &fakeWidget{}
	sched := timertest.New()
	d := mapview.New(w, sched)

	d.ShowLocation(51.5, -0.1, "London")
	sched.Advance(100 * time.Millisecond)
	d.ShowLocation(52.52, 13.4, "Berlin")

	sched.Advance(199 * time.Millisecond)
	assert.Zero(t, w.resized)

	sched.Advance(time.Millisecond)
	assert.Equal(t, 1, w.resized)
}

func TestPopupHTML_EscapesLabel(t *testing.T) {
	got := mapview.PopupHTML(`<img src=x onerror="alert(1)">`, 1.25, 2)

	assert.Equal(t, "<b>&lt;img src=x onerror=&#34;alert(1)&#34;&gt;</b><br>Lat: 1.25, Lon: 2", got)
}
