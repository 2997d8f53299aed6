package api

import (
	"ims_server/api/admin"
	"ims_server/api/auth"
	"ims_server/api/categories"
	"ims_server/api/debug"
	"ims_server/api/health"
	"ims_server/api/middleware"
	"ims_server/api/products"
	"ims_server/database"
	"ims_server/services"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	categoryRoutes *categories.CategoryRoutesManager
	productRoutes  *products.ProductRoutesManager
	healthRoutes   *health.HealthRoutesManager
	authRoutes     *auth.AuthRoutesManager
	adminRoutes    *admin.AdminRoutesManager
	debugRoutes    *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	db *database.DB,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *routerManager {
	sm := services.NewServiceManager(logger, cfg, db)

	return &routerManager{
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CategoryService, sm.ProductService),
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService, sm.CategoryService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService, sm.EmailService, sm.CacheService, cfg, mw),
		adminRoutes:    admin.NewAdminRoutesManager(logger, db, sm, mw),
		debugRoutes:    debug.NewDebugRoutesManager(sm.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.categoryRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
