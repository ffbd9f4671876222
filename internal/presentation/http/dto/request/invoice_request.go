package request

// AddPaymentRequest applies a further payment to a committed invoice
type AddPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// InvoiceFilterRequest represents invoice filter parameters
type InvoiceFilterRequest struct {
	Type           string `form:"type"`
	CounterpartyID string `form:"counterparty_id"`
	StartDate      string `form:"start_date"`
	EndDate        string `form:"end_date"`
	SortBy         string `form:"sort_by"`
	SortOrder      string `form:"sort_order"`
	Page           int    `form:"page"`
	PerPage        int    `form:"per_page"`
}
