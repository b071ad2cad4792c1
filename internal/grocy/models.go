package grocy

// Product identifies one product in the Grocy catalog.
type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StockProduct is the stock view of one product as returned by
// GET /api/stock/products/{id}.
//
// Grocy omits fields for products that have never had a stock transaction, so
// both fields decode to their zero values rather than failing: a missing
// stock_amount reads as 0 and a missing product as an empty Product.
type StockProduct struct {
	StockAmount float64 `json:"stock_amount"`
	Product     Product `json:"product"`
}

// consumeRequest is the body of POST /api/stock/products/{id}/consume.
// The panel always consumes exactly one unit and never marks it spoiled.
type consumeRequest struct {
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	Spoiled         bool    `json:"spoiled"`
}

// addRequest is the body of POST /api/stock/products/{id}/add.
// The panel always adds exactly one unit and carries no price or expiry
// metadata.
type addRequest struct {
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
}
