package currency

import "strings"

// Table maps ISO 3166 alpha-2 country codes to ISO 4217 currency codes.
// It is read-only after construction and safe for concurrent use.
type Table struct {
	byCountry map[string]string
}

// NewTable copies entries; later changes to the argument do not leak in.
func NewTable(entries map[string]string) Table {
	byCountry := make(map[string]string, len(entries))
	for country, cur := range entries {
		byCountry[strings.ToUpper(country)] = strings.ToUpper(cur)
	}
	return Table{byCountry: byCountry}
}

// Default is the dashboard's built-in table. "UK" and "EU" are accepted
// alongside proper ISO codes.
func Default() Table {
	return NewTable(map[string]string{
		"US": "USD",
		"GB": "GBP",
		"UK": "GBP",
		"EU": "EUR",
		"DE": "EUR",
		"FR": "EUR",
		"IT": "EUR",
		"ES": "EUR",
		"NL": "EUR",
		"KZ": "KZT",
		"RU": "RUB",
		"CN": "CNY",
		"JP": "JPY",
		"IN": "INR",
		"CA": "CAD",
		"AU": "AUD",
		"BR": "BRL",
		"KR": "KRW",
		"TR": "TRY",
	})
}

// Lookup is case-sensitive: provider country codes are upper case.
func (t Table) Lookup(country string) (string, bool) {
	cur, ok := t.byCountry[country]
	return cur, ok
}

func (t Table) Len() int {
	return len(t.byCountry)
}
