package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/pricing"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/pkg/apperror"
	"github.com/sokoni/sokoni-api/pkg/pagination"
	"github.com/sokoni/sokoni-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name            string
	Barcode         string // auto-generated when empty
	SupplierID      *uuid.UUID
	BuyingPrice     float64
	MarginPct       float64
	SellingPrice    float64 // derived from buying price and margin when zero
	InitialQuantity int
	MinQuantity     int
}

// CreateProduct creates a new product. A missing barcode is generated, and
// the price triple is reconciled so selling = buying * (1 + margin/100)
// holds from the start.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.BuyingPrice < 0 || input.SellingPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	barcode := input.Barcode
	if barcode == "" {
		barcode = utils.GenerateBarcode()
	}
	existing, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this barcode already exists")
	}

	sellingPrice := input.SellingPrice
	marginPct := input.MarginPct
	if sellingPrice == 0 {
		sellingPrice = input.BuyingPrice * (1 + marginPct/100)
	} else {
		marginPct = pricing.MarginFor(input.BuyingPrice, sellingPrice)
	}

	product := &entity.Product{
		Name:            input.Name,
		Barcode:         barcode,
		SupplierID:      input.SupplierID,
		BuyingPrice:     input.BuyingPrice,
		MarginPct:       marginPct,
		SellingPrice:    sellingPrice,
		InitialQuantity: input.InitialQuantity,
		Quantity:        input.InitialQuantity,
		MinQuantity:     input.MinQuantity,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductInput represents the update product input. Only catalog
// fields are editable here; the stock counter moves exclusively through
// transaction commits.
type UpdateProductInput struct {
	Name         *string
	SupplierID   *uuid.UUID
	BuyingPrice  *float64
	MarginPct    *float64
	SellingPrice *float64
	MinQuantity  *int
}

// UpdateProduct updates catalog fields, reconciling the price triple around
// whichever price field the caller edited. An edited selling price wins over
// an edited margin.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SupplierID != nil {
		product.SupplierID = input.SupplierID
	}
	if input.MinQuantity != nil {
		product.MinQuantity = *input.MinQuantity
	}

	line := pricing.Line{
		BuyingPrice:  product.BuyingPrice,
		MarginPct:    product.MarginPct,
		SellingPrice: product.SellingPrice,
		Quantity:     1,
	}
	edited := pricing.Field(-1)
	if input.BuyingPrice != nil {
		if *input.BuyingPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		line.BuyingPrice = *input.BuyingPrice
		edited = pricing.FieldBuyingPrice
	}
	if input.MarginPct != nil {
		line.MarginPct = *input.MarginPct
		edited = pricing.FieldMarginPct
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		line.SellingPrice = *input.SellingPrice
		edited = pricing.FieldSellingPrice
	}
	if edited >= 0 {
		// Margin stays untouched when a selling-price edit meets a zero
		// buying price; that edge is documented, not corrected
		_ = pricing.Reconcile(&line, edited, enum.InvoiceTypeSale)
		product.BuyingPrice = line.BuyingPrice
		product.MarginPct = line.MarginPct
		product.SellingPrice = line.SellingPrice
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode retrieves a product by barcode (POS scan path)
func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStock returns products at or below their reorder threshold
func (s *ProductService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
