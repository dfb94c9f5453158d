package entities

import "time"

// Product is a catalog/inventory entry (pumps, pipes, cables, motors).
//
// Storage model (DynamoDB):
//   - PK: id
//
// UnitPrice here is the live catalog price. Requests never reference it
// directly; they copy it into RequestItem.UnitPrice when the item is added.

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	StockQty  int       `json:"stock_qty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
