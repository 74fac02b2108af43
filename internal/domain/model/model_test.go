package model

import "testing"

func TestQuoteUpdateEmpty(t *testing.T) {
	if !(QuoteUpdate{}).Empty() {
		t.Fatal("expected zero update to be empty")
	}

	cliente := "Acme"
	monto := 99.5
	cases := []struct {
		name   string
		update QuoteUpdate
	}{
		{"cliente", QuoteUpdate{Cliente: &cliente}},
		{"descripcion", QuoteUpdate{Descripcion: &cliente}},
		{"monto", QuoteUpdate{Monto: &monto}},
		{"fecha", QuoteUpdate{Fecha: &cliente}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.update.Empty() {
				t.Fatal("expected update with field to be non-empty")
			}
		})
	}
}
