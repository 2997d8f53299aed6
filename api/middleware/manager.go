package middleware

import (
	"ims_server/database"
	"ims_server/services"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
)

// Middleware bundles the request-level guards: auth, staff gating, CORS,
// rate limiting and security headers.
type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	db           *database.DB
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		cacheService: services.NewCacheService(logger, cfg),
	}
}
