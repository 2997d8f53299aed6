package auth

import (
	"ims_server/api/middleware"
	"ims_server/services"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	authService  *services.AuthService
	cacheService *services.CacheService
	emailService *services.EmailService
	cfg          *structs.Config
	mw           *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	emailService *services.EmailService,
	cacheService *services.CacheService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		authService:  authService,
		emailService: emailService,
		cacheService: cacheService,
		cfg:          cfg,
		mw:           mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		// CSRF token endpoint (must be called before protected routes)
		r.Get("/csrf", arm.HandleCSRF)

		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.CSRFMiddleware())
			r.Use(arm.mw.StrictRateLimitMiddleware(arm.cfg.RateLimit.AuthLimit, arm.cfg.RateLimit.AuthWindow))
			r.Post("/register", arm.HandleRegister)
			r.Post("/login", arm.HandleLogin)
			r.Post("/logout", arm.HandleLogout)
			r.Post("/refresh", arm.HandleRefresh)
			r.Post("/resend-verification", arm.HandleResendVerification)
		})
		r.Get("/verify-email", arm.HandleVerifyEmail)
		r.Get("/check-verification", arm.HandleCheckVerification)

		// Protected routes for account data
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.UserAuthMiddleware)
			r.Get("/me", arm.HandleMe)
			r.Put("/me", arm.HandleUpdateMe)
		})
	})
}
