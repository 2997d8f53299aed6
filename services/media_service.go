package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// MediaService stores uploaded images on local disk under the configured
// images/ directory and tracks them as media rows tied to inventory entries.
type MediaService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewMediaService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *MediaService {
	return &MediaService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Upload writes the image to disk and records a media row. The stored path
// is relative to the upload dir so the placeholder and uploads share a
// common images/ prefix.
func (ms *MediaService) Upload(ctx context.Context, inventoryId uuid.UUID, file multipart.File, header *multipart.FileHeader, req *structs.MediaRequest) (*tables.Media, error) {
	entry, err := database.FindByID[tables.ProductInventory](ms.db, ctx, inventoryId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if entry == nil {
		return nil, lib.ErrNotFound
	}

	if header.Size > ms.cfg.Media.MaxUploadBytes {
		return nil, fmt.Errorf("%w: image exceeds maximum upload size", lib.ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return nil, fmt.Errorf("%w: unsupported image type %q", lib.ErrValidation, ext)
	}

	if err := os.MkdirAll(ms.cfg.Media.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	mediaId := uuid.New()
	filename := fmt.Sprintf("%s%s", mediaId.String(), ext)
	path := filepath.Join(ms.cfg.Media.UploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	media := &tables.Media{
		Id:                 mediaId,
		ProductInventoryId: inventoryId,
		Image:              path,
		AltText:            req.AltText,
		IsFeature:          req.IsFeature,
	}

	media, err = database.Query[tables.Media](ms.db).Insert(ctx, media)
	if err != nil {
		os.Remove(path)
		return nil, lib.MapPgError(err)
	}

	ms.logger.Info("Media uploaded",
		gecho.Field("id", media.Id),
		gecho.Field("inventory_id", inventoryId),
		gecho.Field("path", path),
	)
	return media, nil
}

// SetFeature marks one media row as the feature image and clears the flag
// on its siblings in the same transaction, so the admin path always
// converges to a single feature image per inventory group.
func (ms *MediaService) SetFeature(ctx context.Context, mediaId uuid.UUID) error {
	return database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		var media tables.Media
		err := tx.NewSelect().
			Model(&media).
			Where("id = ?", mediaId).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return lib.ErrNotFound
			}
			return lib.MapPgError(err)
		}

		if _, err := tx.NewUpdate().
			Model((*tables.Media)(nil)).
			Set("is_feature = ?", false).
			Set("updated_at = ?", time.Now()).
			Where("product_inventory_id = ?", media.ProductInventoryId).
			Where("id != ?", mediaId).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewUpdate().
			Model((*tables.Media)(nil)).
			Set("is_feature = ?", true).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", mediaId).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}

// ListByInventory returns the media rows for an inventory entry, newest first
func (ms *MediaService) ListByInventory(ctx context.Context, inventoryId uuid.UUID) ([]tables.Media, error) {
	media, err := database.Query[tables.Media](ms.db).
		Where("product_inventory_id", inventoryId).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return media, nil
}

// FeatureImagePath returns the newest flagged image path for an inventory
// entry, or the configured placeholder when none is flagged.
func (ms *MediaService) FeatureImagePath(ctx context.Context, inventoryId uuid.UUID) (string, error) {
	media, err := database.Query[tables.Media](ms.db).
		Where("product_inventory_id", inventoryId).
		Where("is_feature", true).
		OrderBy("updated_at", database.DESC).
		Limit(1).
		First(ctx)
	if err != nil {
		return "", lib.MapPgError(err)
	}
	if media == nil {
		return ms.cfg.Media.PlaceholderImage, nil
	}
	return media.Image, nil
}

// Delete removes a media row and best-effort removes its file from disk
func (ms *MediaService) Delete(ctx context.Context, mediaId uuid.UUID) error {
	media, err := database.FindByID[tables.Media](ms.db, ctx, mediaId)
	if err != nil {
		return lib.MapPgError(err)
	}
	if media == nil {
		return lib.ErrNotFound
	}

	if _, err := database.Query[tables.Media](ms.db).Where("id", mediaId).Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	if media.Image != "" && media.Image != ms.cfg.Media.PlaceholderImage {
		if err := os.Remove(media.Image); err != nil && !os.IsNotExist(err) {
			ms.logger.Warn("Failed to remove media file", gecho.Field("path", media.Image), gecho.Field("error", err))
		}
	}

	return nil
}
