package dto

// QuoteCreateRequest describes the client-supplied fields of a new quote.
type QuoteCreateRequest struct {
	Cliente     string  `json:"cliente"`
	Descripcion string  `json:"descripcion"`
	Monto       float64 `json:"monto"`
	Fecha       string  `json:"fecha"`
}

// QuoteUpdateRequest carries a partial replacement; absent fields stay unchanged.
type QuoteUpdateRequest struct {
	Cliente     *string  `json:"cliente"`
	Descripcion *string  `json:"descripcion"`
	Monto       *float64 `json:"monto"`
	Fecha       *string  `json:"fecha"`
}

// QuoteResponse is the wire representation of a stored quote.
type QuoteResponse struct {
	ID          int64   `json:"id"`
	Cliente     string  `json:"cliente"`
	Descripcion string  `json:"descripcion"`
	Monto       float64 `json:"monto"`
	Fecha       string  `json:"fecha"`
}
