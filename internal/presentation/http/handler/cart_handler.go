package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sokoni/sokoni-api/internal/application/service"
	"github.com/sokoni/sokoni-api/internal/domain/cart"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/pricing"
	"github.com/sokoni/sokoni-api/internal/presentation/http/dto/request"
	"github.com/sokoni/sokoni-api/internal/presentation/http/dto/response"
	"github.com/sokoni/sokoni-api/internal/presentation/http/middleware"
)

// CartHandler handles the in-progress transaction (cart) HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Open handles starting a new cart session
func (h *CartHandler) Open(c *gin.Context) {
	var req request.OpenCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	kind := enum.InvoiceTypeSale
	if req.Type == "purchase" {
		kind = enum.InvoiceTypePurchase
	}
	mode := cart.SelectSearch
	if req.SelectMode == "scan" {
		mode = cart.SelectScan
	}

	view := h.cartService.Open(kind, mode)
	response.Created(c, "Cart opened successfully", view)
}

// Get handles retrieving the current cart state
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.cartService.Get(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", view)
}

// Select handles adding a product to the cart, by id or by barcode
func (h *CartHandler) Select(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var (
		view *service.CartView
		err  error
	)
	switch {
	case req.ProductID != nil:
		view, err = h.cartService.SelectProduct(c.Request.Context(), sessionID, *req.ProductID)
	case req.Barcode != "":
		view, err = h.cartService.SelectByBarcode(c.Request.Context(), sessionID, req.Barcode)
	default:
		response.BadRequest(c, "Either product_id or barcode is required")
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product added to cart", view)
}

// UpdateQuantity handles editing a line's quantity; zero or less removes it
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, lineID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated successfully", view)
}

// UpdateDiscount handles editing a line's discount percent
func (h *CartHandler) UpdateDiscount(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	var req request.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.cartService.UpdateDiscount(sessionID, lineID, req.DiscountPct)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated successfully", view)
}

// UpdatePrice handles editing one of a line's price fields
func (h *CartHandler) UpdatePrice(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var field pricing.Field
	switch req.Field {
	case "buying_price":
		field = pricing.FieldBuyingPrice
	case "margin_pct":
		field = pricing.FieldMarginPct
	case "selling_price":
		field = pricing.FieldSellingPrice
	}

	view, err := h.cartService.UpdatePrice(sessionID, lineID, field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price updated successfully", view)
}

// RemoveLine handles deleting a line from the cart
func (h *CartHandler) RemoveLine(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	view, err := h.cartService.RemoveLine(sessionID, lineID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line removed successfully", view)
}

// Cancel handles abandoning a cart session
func (h *CartHandler) Cancel(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.Cancel(sessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cancelled successfully", nil)
}

// Commit handles committing the cart into an invoice
func (h *CartHandler) Commit(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.CommitCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.cartService.Commit(c.Request.Context(), sessionID, &service.CommitCartInput{
		CounterpartyID: req.CounterpartyID,
		ReceivedAmount: req.ReceivedAmount,
		CreatedByID:    middleware.GetCreatorID(c),
		CreatorKind:    middleware.GetCreatorKind(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction committed successfully", withPayment(invoice))
}
