package model

// Quote describes a single cotización record.
type Quote struct {
	ID          int64
	Cliente     string
	Descripcion string
	Monto       float64
	// Fecha is carried as a YYYY-MM-DD string and stored in a DATE column.
	Fecha string
}

// QuoteDraft holds the client-supplied fields of a new quote.
type QuoteDraft struct {
	Cliente     string
	Descripcion string
	Monto       float64
	Fecha       string
}

// QuoteUpdate describes a partial field replacement; nil fields stay untouched.
type QuoteUpdate struct {
	Cliente     *string
	Descripcion *string
	Monto       *float64
	Fecha       *string
}

// Empty reports whether the update carries no fields at all.
func (u QuoteUpdate) Empty() bool {
	return u.Cliente == nil && u.Descripcion == nil && u.Monto == nil && u.Fecha == nil
}
