// Package dto defines the wire types of the chart API response.
package dto

// ChartResponse is the top-level container of a chart API response.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

// Chart carries either results or an API-level error.
type Chart struct {
	Result []Result    `json:"result"`
	Error  *ChartError `json:"error"`
}

// ChartError is the provider's structured error payload.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result holds the metadata block for one symbol. Prices are pointers
// so that absent fields can be told apart from zero values.
type Result struct {
	Meta Meta `json:"meta"`
}

// Meta holds the price fields used for the percent-change computation.
type Meta struct {
	Symbol             string   `json:"symbol"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	PreviousClose      *float64 `json:"previousClose"`
	ChartPreviousClose *float64 `json:"chartPreviousClose"`
}
