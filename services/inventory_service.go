package services

import (
	"context"
	"fmt"
	"time"

	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxMonetary is the exclusive upper bound for mrp, price and discount.
// Columns are decimal(5,2), so anything at or above 1000 cannot be stored.
var maxMonetary = decimal.NewFromInt(1000)

type InventoryService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewInventoryService(logger *gecho.Logger, db *database.DB) *InventoryService {
	return &InventoryService{
		logger: logger,
		db:     db,
	}
}

// validateMonetary checks one monetary field: non-negative, at most two
// fraction digits, below 1000.
func validateMonetary(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", lib.ErrValidation, field)
	}
	if value.Exponent() < -2 {
		return fmt.Errorf("%w: %s allows at most two fraction digits", lib.ErrValidation, field)
	}
	if value.GreaterThanOrEqual(maxMonetary) {
		return fmt.Errorf("%w: %s must be below 1000", lib.ErrValidation, field)
	}
	return nil
}

// validateRequest applies the monetary bounds. The quantity family is
// covered by validator tags; no cross-field arithmetic is enforced between
// available and quantity/sold/defective.
func (is *InventoryService) validateRequest(req *structs.InventoryRequest) error {
	if err := validateMonetary("mrp", req.MRP); err != nil {
		return err
	}
	if err := validateMonetary("price", req.Price); err != nil {
		return err
	}
	return validateMonetary("discount", req.Discount)
}

// Create inserts a stock ledger entry stamped with the creating staff user.
// A missing SKU is generated from the product name.
func (is *InventoryService) Create(ctx context.Context, req *structs.InventoryRequest, actor uuid.UUID) (*tables.ProductInventory, error) {
	if err := is.validateRequest(req); err != nil {
		return nil, err
	}

	sku := req.SKU
	if sku == "" {
		product, err := database.FindByID[tables.Product](is.db, ctx, req.ProductId)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if product == nil {
			return nil, lib.ErrNotFound
		}
		sku, err = lib.GenerateSKU(product.Name, 6)
		if err != nil {
			return nil, fmt.Errorf("failed to generate sku: %w", err)
		}
	}

	entry := &tables.ProductInventory{
		Id:         uuid.New(),
		ProductId:  req.ProductId,
		BrandId:    req.BrandId,
		SupplierId: req.SupplierId,
		SKU:        sku,
		MRP:        req.MRP,
		Price:      req.Price,
		Discount:   req.Discount,
		Quantity:   req.Quantity,
		Sold:       req.Sold,
		Available:  req.Available,
		Defective:  req.Defective,
		CreatedBy:  &actor,
		UpdatedBy:  &actor,
	}

	entry, err := database.Query[tables.ProductInventory](is.db).Insert(ctx, entry)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			is.logger.Warn("Inventory creation failed - duplicate SKU", gecho.Field("sku", sku))
		} else {
			is.logger.Error("Failed to create inventory entry", gecho.Field("error", err), gecho.Field("product_id", req.ProductId))
		}
		return nil, mappedErr
	}

	is.logger.Info("Inventory entry created", gecho.Field("id", entry.Id), gecho.Field("sku", entry.SKU))
	return entry, nil
}

// Update rewrites a ledger entry and stamps the updating staff user
func (is *InventoryService) Update(ctx context.Context, id uuid.UUID, req *structs.InventoryRequest, actor uuid.UUID) (*tables.ProductInventory, error) {
	if err := is.validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"product_id":  req.ProductId,
		"brand_id":    req.BrandId,
		"supplier_id": req.SupplierId,
		"mrp":         req.MRP,
		"price":       req.Price,
		"discount":    req.Discount,
		"quantity":    req.Quantity,
		"sold":        req.Sold,
		"available":   req.Available,
		"defective":   req.Defective,
		"updated_by":  actor,
		"updated_at":  time.Now(),
	}
	if req.SKU != "" {
		updates["sku"] = req.SKU
	}

	affected, err := database.Query[tables.ProductInventory](is.db).Where("id", id).Update(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return is.GetByID(ctx, id)
}

// GetByID returns one ledger entry with its product, brand, supplier and media
func (is *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (*tables.ProductInventory, error) {
	entry, err := database.Query[tables.ProductInventory](is.db).
		Where("id", id).
		Relation("Product").
		Relation("Brand").
		Relation("Supplier").
		Relation("Media").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if entry == nil {
		return nil, lib.ErrNotFound
	}
	return entry, nil
}

// ListByProduct returns the ledger entries for a product in insertion order
func (is *InventoryService) ListByProduct(ctx context.Context, productId uuid.UUID) ([]tables.ProductInventory, error) {
	entries, err := database.Query[tables.ProductInventory](is.db).
		Where("product_id", productId).
		Relation("Brand").
		Relation("Supplier").
		OrderBy("created_at", database.ASC).
		OrderBy("id", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return entries, nil
}

// Delete removes a ledger entry; its media rows go with it
func (is *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Query[tables.Media](is.db).Where("product_inventory_id", id).Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	affected, err := database.Query[tables.ProductInventory](is.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	is.logger.Info("Inventory entry deleted", gecho.Field("id", id))
	return nil
}
