package service

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreateProductDerivesSellingPrice(t *testing.T) {
	productRepo := newFakeProductRepo()
	svc := NewProductService(productRepo, newFakeSupplierRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:            "Tea leaves 500g",
		BuyingPrice:     200,
		MarginPct:       25,
		InitialQuantity: 30,
	})
	if err != nil {
		t.Fatalf("CreateProduct() error: %v", err)
	}

	if math.Abs(product.SellingPrice-250) > 1e-9 {
		t.Errorf("selling price = %v, want derived 250", product.SellingPrice)
	}
	if product.Barcode == "" {
		t.Error("barcode not generated")
	}
	if product.Quantity != 30 {
		t.Errorf("quantity = %d, want initial 30", product.Quantity)
	}
}

func TestCreateProductDerivesMargin(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeSupplierRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:         "Tea leaves 500g",
		BuyingPrice:  200,
		SellingPrice: 300,
	})
	if err != nil {
		t.Fatalf("CreateProduct() error: %v", err)
	}
	if math.Abs(product.MarginPct-50) > 1e-9 {
		t.Errorf("margin = %v, want derived 50", product.MarginPct)
	}
}

func TestCreateProductDuplicateBarcode(t *testing.T) {
	existing := &entity.Product{ID: uuid.New(), Name: "Tea leaves 500g", Barcode: "6001112223334"}
	svc := NewProductService(newFakeProductRepo(existing), newFakeSupplierRepo())

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:    "Other product",
		Barcode: "6001112223334",
	})
	if err == nil {
		t.Fatal("CreateProduct() with duplicate barcode succeeded")
	}
}

func TestCreateProductUnknownSupplier(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeSupplierRepo())
	supplierID := uuid.New()

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:       "Tea leaves 500g",
		SupplierID: &supplierID,
	})
	if err == nil {
		t.Fatal("CreateProduct() with unknown supplier succeeded")
	}
}

func TestUpdateProductReconcilesPrices(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Tea leaves 500g", Barcode: "6001112223334", BuyingPrice: 200, MarginPct: 25, SellingPrice: 250}
	svc := NewProductService(newFakeProductRepo(product), newFakeSupplierRepo())

	updated, err := svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{
		MarginPct: floatPtr(50),
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error: %v", err)
	}
	if math.Abs(updated.SellingPrice-300) > 1e-9 {
		t.Errorf("selling price = %v, want 300", updated.SellingPrice)
	}

	updated, err = svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{
		SellingPrice: floatPtr(240),
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error: %v", err)
	}
	if math.Abs(updated.MarginPct-20) > 1e-9 {
		t.Errorf("margin = %v, want derived 20", updated.MarginPct)
	}
	if math.Abs(updated.BuyingPrice-200) > 1e-9 {
		t.Errorf("buying price = %v, want untouched 200", updated.BuyingPrice)
	}
}

func TestUpdateProductZeroBuyingPriceKeepsMargin(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Promo item", Barcode: "6001112229990", BuyingPrice: 0, MarginPct: 25, SellingPrice: 10}
	svc := NewProductService(newFakeProductRepo(product), newFakeSupplierRepo())

	updated, err := svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{
		SellingPrice: floatPtr(15),
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error: %v", err)
	}
	if updated.SellingPrice != 15 {
		t.Errorf("selling price = %v, want 15", updated.SellingPrice)
	}
	if updated.MarginPct != 25 {
		t.Errorf("margin = %v, want unchanged 25", updated.MarginPct)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeSupplierRepo())
	if _, err := svc.UpdateProduct(context.Background(), uuid.New(), &UpdateProductInput{}); err == nil {
		t.Fatal("UpdateProduct() on unknown product succeeded")
	}
}

func TestGetLowStock(t *testing.T) {
	low := &entity.Product{ID: uuid.New(), Name: "Salt 500g", Barcode: "6000000000017", Quantity: 2, MinQuantity: 5}
	ok := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6000000000024", Quantity: 50, MinQuantity: 5}
	svc := NewProductService(newFakeProductRepo(low, ok), newFakeSupplierRepo())

	products, err := svc.GetLowStock(context.Background())
	if err != nil {
		t.Fatalf("GetLowStock() error: %v", err)
	}
	if len(products) != 1 || products[0].ID != low.ID {
		t.Errorf("low stock = %+v, want only %v", products, low.ID)
	}
}
