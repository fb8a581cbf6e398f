package models

const (
	// Flat surcharge applied to any non-empty cart.
	DeliveryFee = 2.99
	TaxRate     = 0.07
)

// CartLine pairs a menu-item snapshot with a quantity. The restaurant name is
// copied in at add time so the cart and any order built from it stay stable
// even if the catalog changes.
type CartLine struct {
	MenuItem
	Restaurant_name string `json:"restaurant_name"`
	Quantity        int    `json:"quantity" validate:"gt=0"`
}

type CartTotals struct {
	Subtotal     float64 `json:"subtotal"`
	Delivery_Fee float64 `json:"delivery_fee"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

type Cart struct {
	Items []CartLine `json:"items"`
	CartTotals
}

// ComputeTotals derives the cart figures from the lines. Totals are never
// stored; every read recomputes them.
func ComputeTotals(lines []CartLine) CartTotals {
	var t CartTotals
	for _, line := range lines {
		t.Subtotal += line.Price * float64(line.Quantity)
	}
	if t.Subtotal > 0 {
		t.Delivery_Fee = DeliveryFee
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Delivery_Fee + t.Tax
	return t
}
