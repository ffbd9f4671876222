package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sokoni/sokoni-api/internal/application/service"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/payment"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/internal/presentation/http/dto/request"
	"github.com/sokoni/sokoni-api/internal/presentation/http/dto/response"
	"github.com/sokoni/sokoni-api/pkg/pagination"
)

// InvoiceHandler handles committed invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

type invoiceWithPayment struct {
	*entity.Invoice
	Payment payment.Settlement `json:"payment"`
	Status  string             `json:"payment_status"`
}

func withPayment(invoice *entity.Invoice) *invoiceWithPayment {
	tracker := payment.Tracker{Total: invoice.Total, AmountPaid: invoice.AmountPaid}
	return &invoiceWithPayment{
		Invoice: invoice,
		Payment: tracker.State(),
		Status:  tracker.Status().String(),
	}
}

// Get handles retrieving an invoice with its items and payment state
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", withPayment(invoice))
}

// List handles listing invoices with filters
func (h *InvoiceHandler) List(c *gin.Context) {
	var req request.InvoiceFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	switch req.Type {
	case "sale":
		t := enum.InvoiceTypeSale
		params.Type = &t
	case "purchase":
		t := enum.InvoiceTypePurchase
		params.Type = &t
	case "":
	default:
		response.BadRequest(c, "Invalid type, expected sale or purchase")
		return
	}
	if req.CounterpartyID != "" {
		counterpartyID, err := uuid.Parse(req.CounterpartyID)
		if err != nil {
			response.BadRequest(c, "Invalid counterparty_id format")
			return
		}
		params.CounterpartyID = &counterpartyID
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Unpaid handles listing invoices with outstanding debt
func (h *InvoiceHandler) Unpaid(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.invoiceService.GetUnpaidInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Unpaid invoices retrieved successfully", result)
}

// AddPayment handles applying a further payment to an invoice
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.AddPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", withPayment(invoice))
}
