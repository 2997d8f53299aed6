package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
	}
}

func (as *AuthService) Login(authRequest *structs.AuthRequest) (*tables.User, error) {
	startTime := time.Now()
	user, err := database.Query[tables.User](as.db).Where("email", authRequest.Email).First(context.Background())
	if err != nil {
		mappedErr := lib.MapPgError(err)

		as.logger.Debug("Database query during login",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("error_detail", lib.GetDetailForLogging(mappedErr)),
		)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("original_error", err),
			)
		}

		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	// First() returns nil, nil for no results
	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	// Accounts stay inactive until the verification email link is followed
	if !user.IsActive {
		as.logger.Debug("Login attempt for unverified account", gecho.Field("user_id", user.Id))
		return nil, lib.ErrAccountInactive
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User logged in successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	cacheErr := as.cacheService.SetUserInCache(user)
	if cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	return user, nil
}

// Register creates an inactive user. Activation happens through the email
// verification flow; uniqueness of email and mobile number is left to the
// storage layer and surfaced as a conflict.
func (as *AuthService) Register(registerRequest *structs.RegisterRequest) (*tables.User, error) {
	startTime := time.Now()
	passwordHash, err := as.HashPassword(registerRequest.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}
	user := &tables.User{
		Email:        lib.SanitizeString(registerRequest.Email, true, true),
		FirstName:    lib.SanitizeString(registerRequest.FirstName, true, false),
		LastName:     lib.SanitizeString(registerRequest.LastName, true, false),
		Country:      registerRequest.Country,
		MobileNumber: registerRequest.MobileNumber,
		Gender:       registerRequest.Gender,
		PasswordHash: passwordHash,
		IsActive:     false,
		IsStaff:      false,
	}
	user, err = database.Query[tables.User](as.db).Insert(context.Background(), user)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		// Log unique violations as warnings (user error)
		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate email or mobile number",
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("email", registerRequest.Email),
			)
		}

		return nil, mappedErr
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User registered successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	return user, nil
}

// HashPassword hashes a plain-text password and returns a string and possible error
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	params := fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	encoded := fmt.Sprintf("$argon2id$v=19$%s$%s$%s", params, b64Salt, b64Hash)
	return encoded, nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(hashedPassword)
	if err != nil {
		return false, err
	}

	// Hash the input password with the same parameters
	hash := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	// Compare the hashes
	return lib.SecureCompare(hash, parts.Hash), nil
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	return lib.SignToken(user.Id, user.Email, user.IsStaff, as.cfg.Auth.AccessTokenExpiry, as.cfg.Auth.AccessTokenSecret)
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GenerateRefreshToken generates a JWT refresh token for the given user
func (as *AuthService) GenerateRefreshToken(user *tables.User) (string, error) {
	return lib.SignToken(user.Id, user.Email, user.IsStaff, as.cfg.Auth.RefreshTokenExpiry, as.cfg.Auth.RefreshTokenSecret)
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

// RefreshTokens validates a refresh token and issues a new token pair
func (as *AuthService) RefreshTokens(refreshToken string) (*tables.User, string, string, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		as.logger.Debug("Failed to parse refresh token", gecho.Field("error", err))
		return nil, "", "", lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		return nil, "", "", lib.ErrExpiredToken
	}

	isBlacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Error("Failed to check if token is blacklisted", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, "", "", err
	}
	if isBlacklisted {
		as.logger.Warn("Refresh token is blacklisted", gecho.Field("jti", claims.Jti))
		return nil, "", "", lib.ErrInvalidToken
	}

	user, err := as.GetUserByID(claims.Sub)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	newRefreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, newRefreshToken, nil
}

func (as *AuthService) GetUserByID(userId uuid.UUID) (*tables.User, error) {
	// Try to get user from cache first
	cachedUser, err := as.cacheService.GetUserFromCache(userId)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
	} else if cachedUser != nil {
		return cachedUser, nil
	}

	// Cache miss - fetch user from database
	user, err := database.Query[tables.User](as.db).
		Where("id", userId).
		Relation("Profile").
		Relation("Address").
		First(context.Background())
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}
	user.PasswordHash = ""

	// Cache the user asynchronously
	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
		}
	}()

	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

func (as *AuthService) GetRefreshTokenSecret() string {
	return as.cfg.Auth.RefreshTokenSecret
}

func (as *AuthService) UpdateLastLogin(userId uuid.UUID) error {
	updates := map[string]any{
		"last_login": time.Now(),
	}
	_, err := database.Query[tables.User](as.db).Where("id", userId).Update(context.Background(), updates)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

// VerifyEmail consumes a verification token and activates the account
func (as *AuthService) VerifyEmail(userId uuid.UUID, token string) error {
	verification, err := database.Query[tables.EmailVerification](as.db).
		Where("user_id", userId).
		Where("token", token).
		First(context.Background())
	if err != nil {
		as.logger.Error("Failed to find email verification record", gecho.Field("error", err), gecho.Field("user_id", userId))
		return lib.MapPgError(err)
	}
	if verification == nil || verification.Used {
		as.logger.Warn("Email verification record not found or already used", gecho.Field("user_id", userId))
		return lib.ErrInvalidToken
	}

	if time.Now().After(verification.ExpiresAt) {
		as.logger.Warn("Email verification token has expired", gecho.Field("user_id", userId), gecho.Field("expires_at", verification.ExpiresAt))
		return lib.ErrExpiredToken
	}

	return database.Transaction(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*tables.User)(nil)).
			Set("is_active = ?", true).
			Where("id = ?", userId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewUpdate().
			Model((*tables.EmailVerification)(nil)).
			Set("used = ?", true).
			Where("id = ?", verification.Id).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		as.logger.Info("Email verified successfully", gecho.Field("user_id", userId))
		return nil
	})
}

// UpdateProfile updates the authenticated user's profile description and
// address, creating the one-to-one rows on first write.
func (as *AuthService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *structs.UpdateProfileRequest) (*tables.User, error) {
	user, err := database.Query[tables.User](as.db).Where("id", userId).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if req.Description != nil {
			if user.ProfileId == nil {
				profile := &tables.Profile{Id: uuid.New(), Description: *req.Description}
				if _, err := tx.NewInsert().Model(profile).Exec(ctx); err != nil {
					return err
				}
				user.ProfileId = &profile.Id
				if _, err := tx.NewUpdate().
					Model((*tables.User)(nil)).
					Set("profile_id = ?", profile.Id).
					Where("id = ?", userId).
					Exec(ctx); err != nil {
					return err
				}
			} else {
				if _, err := tx.NewUpdate().
					Model((*tables.Profile)(nil)).
					Set("description = ?", *req.Description).
					Set("updated_at = ?", time.Now()).
					Where("id = ?", *user.ProfileId).
					Exec(ctx); err != nil {
					return err
				}
			}
		}

		if req.Address != nil {
			if user.AddressId == nil {
				address := &tables.Address{Id: uuid.New()}
				applyAddressRequest(address, req.Address)
				if _, err := tx.NewInsert().Model(address).Exec(ctx); err != nil {
					return err
				}
				user.AddressId = &address.Id
				if _, err := tx.NewUpdate().
					Model((*tables.User)(nil)).
					Set("address_id = ?", address.Id).
					Where("id = ?", userId).
					Exec(ctx); err != nil {
					return err
				}
			} else {
				address := &tables.Address{Id: *user.AddressId}
				applyAddressRequest(address, req.Address)
				address.UpdatedAt = time.Now()
				if _, err := tx.NewUpdate().
					Model(address).
					Column("full_name", "phone", "postcode", "address_line1", "address_line2", "town_city", "delivery_instructions", "updated_at").
					Where("id = ?", *user.AddressId).
					Exec(ctx); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := as.cacheService.InvalidateUserCache(userId); err != nil {
		as.logger.Warn("Failed to invalidate user cache after profile update", gecho.Field("error", err), gecho.Field("user_id", userId))
	}

	return as.GetUserByID(userId)
}

func applyAddressRequest(address *tables.Address, req *structs.AddressRequest) {
	address.FullName = req.FullName
	address.Phone = req.Phone
	address.Postcode = req.Postcode
	address.AddressLine1 = req.AddressLine1
	address.AddressLine2 = req.AddressLine2
	address.TownCity = req.TownCity
	address.DeliveryInstructions = req.DeliveryInstructions
}

// GetDB returns the database instance (helper method for accessing db)
func (as *AuthService) GetDB() *database.DB {
	return as.db
}
