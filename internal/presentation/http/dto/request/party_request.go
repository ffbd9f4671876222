package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Phone   string  `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Phone string  `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
}
