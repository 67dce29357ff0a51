//go:build js && wasm

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/city-dashboard/internal/currency"
	"github.com/Nazarious-ucu/city-dashboard/internal/dashboard"
	"github.com/Nazarious-ucu/city-dashboard/internal/mapview"
	"github.com/Nazarious-ucu/city-dashboard/internal/timer"
	"github.com/Nazarious-ucu/city-dashboard/internal/web/dom"
	"github.com/Nazarious-ucu/city-dashboard/pkg/logger"
)

func main() {
	l := logger.NewConsoleLogger("city_dashboard_web")

	doc := dom.NewDocument()
	page := dom.NewPage(doc)

	display := mapview.New(dom.NewLeaflet(dom.MapElementID), timer.Real{})
	display.Initialize()

	ctrl := dashboard.NewController(
		dashboard.NewClient(dom.Origin(), &http.Client{}),
		currency.Default(),
		dashboard.Views{
			Weather:   page,
			News:      page,
			Map:       display,
			Converter: page,
			Alerter:   page,
		},
		timer.Real{},
		time.Local,
		l,
	)

	release := dom.Bind(context.Background(), doc, ctrl)
	defer release()

	l.Info().Msg("dashboard ready")
	select {}
}
