package structs

import "github.com/google/uuid"

type CategoryRequest struct {
	Name     string     `json:"name" validate:"required,min=1,max=150"`
	Slug     string     `json:"slug" validate:"omitempty,slug,max=150"`
	Content  string     `json:"content" validate:"omitempty,max=5000"`
	IsActive *bool      `json:"is_active" validate:"omitempty"`
	ParentId *uuid.UUID `json:"parent_id" validate:"omitempty"`
}

type ProductRequest struct {
	Name          string      `json:"name" validate:"required,min=1,max=200"`
	Slug          string      `json:"slug" validate:"omitempty,slug,max=200"`
	Summary       string      `json:"summary" validate:"omitempty,max=1000"`
	Content       string      `json:"content" validate:"required,max=10000"`
	ProductTypeId *uuid.UUID  `json:"product_type_id" validate:"omitempty"`
	CategoryIds   []uuid.UUID `json:"category_ids" validate:"omitempty,dive,required"`
}

type ProductTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

type BrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}
