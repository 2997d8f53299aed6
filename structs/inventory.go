package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryRequest carries a stock ledger entry. Monetary bounds (two
// fraction digits, below 1000) are checked by the inventory service since
// they are decimal properties, not tag-expressible ones.
type InventoryRequest struct {
	ProductId  uuid.UUID       `json:"product_id" validate:"required"`
	BrandId    uuid.UUID       `json:"brand_id" validate:"required"`
	SupplierId uuid.UUID       `json:"supplier_id" validate:"required"`
	SKU        string          `json:"sku" validate:"omitempty,max=60"`
	MRP        decimal.Decimal `json:"mrp"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
	Sold       int             `json:"sold" validate:"gte=0"`
	Available  int             `json:"available" validate:"gte=0"`
	Defective  int             `json:"defective" validate:"gte=0"`
}

type SupplierRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=200"`
	MobileNumber string          `json:"mobile_number" validate:"required,sdphone"`
	Email        string          `json:"email" validate:"required,catalogemail"`
	Address      *AddressRequest `json:"address" validate:"omitempty"`
}

type MediaRequest struct {
	AltText   string `json:"alt_text" validate:"omitempty,max=300"`
	IsFeature bool   `json:"is_feature"`
}
