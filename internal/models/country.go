package models

// CountryCurrency is the body of /api/country-info.
type CountryCurrency struct {
	Currency string `json:"currency"`
}

// ErrorResponse is the JSON body of every non-2xx API answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
