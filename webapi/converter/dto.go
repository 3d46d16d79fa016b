package converter

//revive:disable

// InputRequest represents the request body for editing the price input.
type InputRequest struct {
	Value string `json:"value" validate:"max=64"`
}

// ModeRequest represents the request body for switching between total and per-weight prices.
type ModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=total weight"`
}

// QuoteQuery represents the query parameters of a stateless conversion.
type QuoteQuery struct {
	Amount    string `query:"amount" validate:"max=64"`
	Direction string `query:"direction" validate:"omitempty,oneof=ils-cad cad-ils"`
	Mode      string `query:"mode" validate:"omitempty,oneof=total weight"`
}

// QuoteResponse is the result of a stateless conversion.
type QuoteResponse struct {
	Amount     float64 `json:"amount"`
	Direction  string  `json:"direction"`
	Mode       string  `json:"mode"`
	Rate       float64 `json:"rate"`
	RateText   string  `json:"rate_text"`
	Result     float64 `json:"result"`
	ResultText string  `json:"result_text"`
}

//revive:enable
