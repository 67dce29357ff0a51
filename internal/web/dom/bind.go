//go:build js && wasm

package dom

import (
	"context"
	"syscall/js"

	"github.com/Nazarious-ucu/city-dashboard/internal/dashboard"
)

// Bind attaches the page controls to ctrl. Handlers return immediately; the
// controller runs in its own goroutine because it blocks on the network.
// The returned func detaches and releases the callbacks.
func Bind(ctx context.Context, doc Document, ctrl *dashboard.Controller) func() {
	var releases []func()

	listen := func(id, event string, fn func()) {
		el := doc.byID(id)
		if !el.Truthy() {
			return
		}
		cb := js.FuncOf(func(js.Value, []js.Value) any {
			fn()
			return nil
		})
		el.Call("addEventListener", event, cb)
		releases = append(releases, func() {
			el.Call("removeEventListener", event, cb)
			cb.Release()
		})
	}

	listen(idSearchBtn, "click", func() {
		city := doc.value(idCityInput)
		go ctrl.Search(ctx, city)
	})
	listen(idConvertBtn, "click", func() {
		amount, from, to := doc.value(idAmount), doc.value(idFrom), doc.value(idToCurrency)
		go ctrl.Convert(ctx, amount, from, to)
	})
	listen(idToCurrency, "change", func() {
		ctrl.SetSelectedCurrency(doc.value(idToCurrency))
	})

	return func() {
		for _, release := range releases {
			release()
		}
	}
}
