package rates

import "encoding/json"

// Source is one remote USD-based rate endpoint. Sources are tried in order;
// the first usable answer wins.
type Source struct {
	Name string
	URL  string
}

// DefaultSources is the ranked endpoint list. Both speak JSON with a map of
// quote currency to rate, they just disagree on the key.
func DefaultSources() []Source {
	return []Source{
		{Name: "open.er-api.com", URL: "https://open.er-api.com/v6/latest/USD"},
		{Name: "exchangerate-api.com", URL: "https://api.exchangerate-api.com/v4/latest/USD"},
	}
}

// rateDocument covers both response shapes seen in the wild: er-api nests
// under "rates", some mirrors under "conversion_rates".
type rateDocument struct {
	Rates           map[string]float64 `json:"rates"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// extractRate pulls the quote's rate out of a source response body.
// A zero return means the document did not carry a usable rate.
func extractRate(body []byte, quote string) float64 {
	var doc rateDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0
	}
	if r, ok := doc.Rates[quote]; ok {
		return r
	}
	return doc.ConversionRates[quote]
}
