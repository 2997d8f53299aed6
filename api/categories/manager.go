package categories

import (
	"ims_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService *services.CategoryService
	productService  *services.ProductService
}

func NewCategoryRoutesManager(
	logger *gecho.Logger,
	categoryService *services.CategoryService,
	productService *services.ProductService,
) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
		productService:  productService,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", crm.ListActive)
		r.Get("/tree", crm.Tree)
		r.Get("/{slug}", crm.ProductsByCategory)
		r.Get("/{slug}/ancestors", crm.Ancestors)
		r.Get("/{slug}/descendants", crm.Descendants)
	})
}
