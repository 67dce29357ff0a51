//go:build integration

package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

type providerServers struct {
	weather  *httptest.Server
	news     *httptest.Server
	exchange *httptest.Server
	country  *httptest.Server
}

func (p providerServers) Close() {
	p.weather.Close()
	p.news.Close()
	p.exchange.Close()
	p.country.Close()
}

func newProviderServers() providerServers {
	return providerServers{
		weather:  httptest.NewServer(http.HandlerFunc(openWeatherHandler)),
		news:     httptest.NewServer(http.HandlerFunc(newsAPIHandler)),
		exchange: httptest.NewServer(http.HandlerFunc(exchangeHandler)),
		country:  httptest.NewServer(http.HandlerFunc(restCountriesHandler)),
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func openWeatherHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("appid") != weatherKey {
		writeJSON(w, http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."}`)
		return
	}
	switch q.Get("q") {
	case "London":
		writeJSON(w, http.StatusOK, `{
			"coord":{"lon":-0.1257,"lat":51.5085},
			"weather":[{"id":500,"main":"Rain","description":"light rain","icon":"10d"}],
			"main":{"temp":14.6,"feels_like":14.1,"pressure":1012,"humidity":81},
			"wind":{"speed":4.63},
			"rain":{"1h":0.4,"3h":1.25},
			"sys":{"country":"GB"},
			"name":"London"
		}`)
	case "Broken":
		writeJSON(w, http.StatusOK, `{"weather":[],"main":{"temp":1},"name":"Broken"}`)
	case "Outage":
		writeJSON(w, http.StatusServiceUnavailable, `{"cod":503,"message":"maintenance"}`)
	default:
		writeJSON(w, http.StatusNotFound, `{"cod":"404","message":"city not found"}`)
	}
}

func newsAPIHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("apiKey") != newsKey || q.Get("pageSize") != "4" || q.Get("sortBy") != "publishedAt" {
		writeJSON(w, http.StatusBadRequest, `{"status":"error","code":"parameterInvalid","message":"bad request"}`)
		return
	}
	if q.Get("q") == "Nowhere" {
		writeJSON(w, http.StatusInternalServerError, `{"status":"error","message":"boom"}`)
		return
	}

	var articles []string
	for _, title := range []string{"one", "two", "three", "four", "five"} {
		articles = append(articles, `{"source":{"id":null,"name":"Example"},"title":"`+title+
			`","url":"https://example.com/`+title+`","urlToImage":null,"publishedAt":"2024-05-01T10:00:00Z"}`)
	}
	writeJSON(w, http.StatusOK, `{"status":"ok","totalResults":5,"articles":[`+strings.Join(articles, ",")+`]}`)
}

func exchangeHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 4 || parts[0] != "v6" || parts[2] != "latest" {
		writeJSON(w, http.StatusNotFound, `{"result":"error","error-type":"unsupported-code"}`)
		return
	}
	if parts[1] != exchangeKey {
		writeJSON(w, http.StatusForbidden, `{"result":"error","error-type":"invalid-key"}`)
		return
	}
	switch parts[3] {
	case "USD":
		writeJSON(w, http.StatusOK, `{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"EUR":0.92,"GBP":0.79}}`)
	default:
		writeJSON(w, http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`)
	}
}

func restCountriesHandler(w http.ResponseWriter, r *http.Request) {
	switch strings.TrimPrefix(r.URL.Path, "/v3.1/alpha/") {
	case "KZ":
		writeJSON(w, http.StatusOK, `[{"cca2":"KZ","currencies":{"KZT":{"name":"Kazakhstani tenge","symbol":"₸"}}}]`)
	case "CH":
		writeJSON(w, http.StatusOK, `[{"cca2":"CH","currencies":{"CHF":{"name":"Swiss franc"},"EUR":{"name":"Euro"}}}]`)
	default:
		writeJSON(w, http.StatusNotFound, `{"status":404,"message":"Not Found"}`)
	}
}
