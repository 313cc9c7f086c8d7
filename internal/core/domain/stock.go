package domain

import "time"

// StockItem is a consumable or supply tracked by the logistics team.
type StockItem struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Category       string    `json:"category" bson:"category"`
	Quantity       int       `json:"quantity" bson:"quantity"`
	Unit           string    `json:"unit" bson:"unit"`
	AlertThreshold int       `json:"alert_threshold" bson:"alert_threshold"`
	ExpiryDate     string    `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	Supplier       string    `json:"supplier,omitempty" bson:"supplier,omitempty"`
	UnitPrice      float64   `json:"unit_price,omitempty" bson:"unit_price,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// LowStock reports whether the item has fallen to or below its alert threshold.
func (s *StockItem) LowStock() bool {
	return s.Quantity <= s.AlertThreshold
}
