package tables

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the category tree. The tree itself is indexed by
// CategoryPath rows; Parent/Children are conveniences for API responses.
type Category struct {
	tableName struct{}   `bun:"table:categories,alias:c"`
	Id        uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string     `bun:"name,notnull" json:"name"`
	Slug      string     `bun:"slug,unique,notnull" json:"slug"`
	Content   string     `bun:"content" json:"content,omitempty"`
	IsActive  bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	ParentId  *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Parent   *Category   `bun:"rel:belongs-to,join:parent_id=id" json:"-"`
	Children []*Category `bun:"-" json:"children,omitempty"` // assembled in memory, name order
}

// CategoryPath is the closure table behind the category tree: one row per
// (ancestor, descendant) pair, including the self pair at depth 0. Every
// write to a Category maintains its rows in the same transaction.
type CategoryPath struct {
	tableName    struct{}  `bun:"table:category_paths,alias:cp"`
	AncestorId   uuid.UUID `bun:"ancestor_id,pk,type:uuid" json:"ancestor_id"`
	DescendantId uuid.UUID `bun:"descendant_id,pk,type:uuid" json:"descendant_id"`
	Depth        int       `bun:"depth,notnull" json:"depth"`
}

type ProductType struct {
	tableName struct{}  `bun:"table:product_types,alias:pt"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,unique,notnull" json:"name"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Product struct {
	tableName     struct{}   `bun:"table:products,alias:p"`
	Id            uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string     `bun:"name,notnull" json:"name"`
	Slug          string     `bun:"slug,unique,notnull" json:"slug"`
	Summary       string     `bun:"summary" json:"summary,omitempty"`
	Content       string     `bun:"content,notnull" json:"content"`
	ProductTypeId *uuid.UUID `bun:"product_type_id,type:uuid" json:"product_type_id,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Type       *ProductType `bun:"rel:belongs-to,join:product_type_id=id" json:"type,omitempty"`
	Categories []*Category  `bun:"m2m:product_categories,join:Product=Category" json:"categories,omitempty"`
}

// ProductCategory is the m2m join between products and categories.
// Registered with bun as the join model at startup.
type ProductCategory struct {
	tableName  struct{}  `bun:"table:product_categories,alias:pc"`
	ProductId  uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	CategoryId uuid.UUID `bun:"category_id,pk,type:uuid" json:"category_id"`

	Product  *Product  `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"-"`
}
