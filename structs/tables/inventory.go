package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Brand struct {
	tableName struct{}  `bun:"table:brands,alias:b"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,unique,notnull" json:"name"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Supplier struct {
	tableName    struct{}   `bun:"table:suppliers,alias:s"`
	Id           uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name         string     `bun:"name,notnull" json:"name"`
	AddressId    *uuid.UUID `bun:"address_id,type:uuid,unique" json:"address_id,omitempty"`
	MobileNumber string     `bun:"mobile_number,unique,notnull" json:"mobile_number"`
	Email        string     `bun:"email,unique,notnull" json:"email"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Address *Address `bun:"rel:belongs-to,join:address_id=id" json:"address,omitempty"`
}

// ProductInventory is one stock ledger entry for a product. Monetary columns
// are decimal(5,2): two fraction digits, bounded below 1000. The quantity
// family is validated non-negative at the service layer; no arithmetic ties
// available to quantity - sold - defective.
type ProductInventory struct {
	tableName  struct{}        `bun:"table:product_inventories,alias:inv"`
	Id         uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductId  uuid.UUID       `bun:"product_id,type:uuid,notnull" json:"product_id"`
	BrandId    uuid.UUID       `bun:"brand_id,type:uuid,notnull" json:"brand_id"`
	SupplierId uuid.UUID       `bun:"supplier_id,type:uuid,notnull" json:"supplier_id"`
	SKU        string          `bun:"sku,unique,notnull" json:"sku"`
	MRP        decimal.Decimal `bun:"mrp,notnull,type:decimal(5,2)" json:"mrp"`
	Price      decimal.Decimal `bun:"price,notnull,type:decimal(5,2)" json:"price"`
	Discount   decimal.Decimal `bun:"discount,notnull,type:decimal(5,2)" json:"discount"`
	Quantity   int             `bun:"quantity,notnull,default:0" json:"quantity"`
	Sold       int             `bun:"sold,notnull,default:0" json:"sold"`
	Available  int             `bun:"available,notnull,default:0" json:"available"`
	Defective  int             `bun:"defective,notnull,default:0" json:"defective"`
	CreatedBy  *uuid.UUID      `bun:"created_by,type:uuid" json:"created_by,omitempty"`
	UpdatedBy  *uuid.UUID      `bun:"updated_by,type:uuid" json:"updated_by,omitempty"`
	CreatedAt  time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time       `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Product  *Product  `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	Brand    *Brand    `bun:"rel:belongs-to,join:brand_id=id" json:"brand,omitempty"`
	Supplier *Supplier `bun:"rel:belongs-to,join:supplier_id=id" json:"supplier,omitempty"`
	Media    []*Media  `bun:"rel:has-many,join:id=product_inventory_id" json:"media,omitempty"`
}

type Media struct {
	tableName          struct{}  `bun:"table:media,alias:m"`
	Id                 uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductInventoryId uuid.UUID `bun:"product_inventory_id,type:uuid,notnull" json:"product_inventory_id"`
	Image              string    `bun:"image,notnull" json:"image"` // path under the images/ dir
	AltText            string    `bun:"alt_text" json:"alt_text,omitempty"`
	IsFeature          bool      `bun:"is_feature,notnull,default:false" json:"is_feature"`
	CreatedAt          time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt          time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
