package request

type CreateProductRequest struct {
	Name      string        `json:"name" binding:"required"`
	Category  string        `json:"category"`
	UnitPrice LenientNumber `json:"unit_price"`
	StockQty  int           `json:"stock_qty"`
}

type UpdateProductPriceRequest struct {
	UnitPrice LenientNumber `json:"unit_price"`
}

type FreezeItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
