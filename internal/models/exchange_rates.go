package models

// ExchangeRateTable mirrors the ExchangeRate-API "latest" payload.
// ConversionRates[BaseCode] is 1 by provider contract.
type ExchangeRateTable struct {
	Result             string             `json:"result"`
	Documentation      string             `json:"documentation,omitempty"`
	TermsOfUse         string             `json:"terms_of_use,omitempty"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix,omitempty"`
	TimeLastUpdateUTC  string             `json:"time_last_update_utc,omitempty"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix,omitempty"`
	TimeNextUpdateUTC  string             `json:"time_next_update_utc,omitempty"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
}

// Rate returns the rate to the target currency, if known.
func (t ExchangeRateTable) Rate(target string) (float64, bool) {
	rate, ok := t.ConversionRates[target]
	return rate, ok
}
