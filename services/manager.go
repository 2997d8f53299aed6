package services

import (
	"ims_server/database"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService      *AuthService
	EmailService     *EmailService
	CacheService     *CacheService
	HealthService    *HealthService
	CategoryService  *CategoryService
	ProductService   *ProductService
	InventoryService *InventoryService
	SupplierService  *SupplierService
	MediaService     *MediaService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	emailService := NewEmailService(logger, cfg, db)
	healthService := NewHealthService(logger, db)
	categoryService := NewCategoryService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService, categoryService)
	inventoryService := NewInventoryService(logger, db)
	supplierService := NewSupplierService(logger, db)
	mediaService := NewMediaService(logger, cfg, db)

	return &ServiceManager{
		AuthService:      authService,
		EmailService:     emailService,
		CacheService:     cacheService,
		HealthService:    healthService,
		CategoryService:  categoryService,
		ProductService:   productService,
		InventoryService: inventoryService,
		SupplierService:  supplierService,
		MediaService:     mediaService,
	}
}
