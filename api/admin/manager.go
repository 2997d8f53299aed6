package admin

import (
	"ims_server/api/middleware"
	"ims_server/database"
	"ims_server/services"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AdminRoutesManager exposes the staff-only record browser. Plain entities
// ride the generic record handlers; entities with service-side rules
// (category tree, inventory bounds, product membership, supplier address)
// go through their services.
type AdminRoutesManager struct {
	logger           *gecho.Logger
	db               *database.DB
	authService      *services.AuthService
	categoryService  *services.CategoryService
	productService   *services.ProductService
	inventoryService *services.InventoryService
	supplierService  *services.SupplierService
	mediaService     *services.MediaService
	mw               *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	db *database.DB,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:           logger,
		db:               db,
		authService:      sm.AuthService,
		categoryService:  sm.CategoryService,
		productService:   sm.ProductService,
		inventoryService: sm.InventoryService,
		supplierService:  sm.SupplierService,
		mediaService:     sm.MediaService,
		mw:               mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ar.mw.UserAuthMiddleware)
		r.Use(ar.mw.StaffOnlyMiddleware)
		// CSRF passes GETs through, so it can gate the whole browser
		r.Use(ar.mw.CSRFMiddleware())

		// Plain entities on the generic record handlers
		registerRecordRoutes[tables.ProductType](ar, r, "product-types")
		registerRecordRoutes[tables.Brand](ar, r, "brands")
		registerRecordRoutes[tables.Address](ar, r, "addresses")
		registerRecordRoutes[tables.Profile](ar, r, "profiles")

		// Entities with service-side rules
		ar.registerUserRoutes(r)
		ar.registerCategoryRoutes(r)
		ar.registerProductRoutes(r)
		ar.registerInventoryRoutes(r)
		ar.registerSupplierRoutes(r)
		ar.registerMediaRoutes(r)
	})
}
