package products

import (
	"ims_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger          *gecho.Logger
	productService  *services.ProductService
	categoryService *services.CategoryService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	categoryService *services.CategoryService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:          logger,
		productService:  productService,
		categoryService: categoryService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	// Short product detail path
	r.Get("/p/{id}", prm.FetchProductByID)

	// Read-only JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/", prm.FetchAllProducts)
		r.Get("/p/{id}", prm.FetchProductByID)
		r.Get("/category", prm.FetchCategories)
		r.Get("/category/", prm.FetchCategories)
		r.Get("/category/{slug}", prm.FetchProductsByCategory)
	})
}
