package services

import (
	"context"
	"fmt"
	"time"

	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger          *gecho.Logger
	db              *database.DB
	cacheService    *CacheService
	categoryService *CategoryService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService, categoryService *CategoryService) *ProductService {
	return &ProductService{
		logger:          logger,
		db:              db,
		cacheService:    cacheService,
		categoryService: categoryService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	SearchTerm    string     `json:"search_term,omitempty"`    // Search in name, summary, content
	CreatedAfter  *time.Time `json:"created_after,omitempty"`  // Products created after this date
	CreatedBefore *time.Time `json:"created_before,omitempty"` // Products created before this date

	// Relations
	IncludeCategories bool `json:"include_categories"` // Preload category membership
	IncludeType       bool `json:"include_type"`       // Preload product type

	// Performance
	Timeout time.Duration `json:"-"` // Query timeout (not exposed in JSON)
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	QueryTime  time.Duration       `json:"query_time"`
}

// isPlainListing reports whether opts describe the unfiltered default
// listing, the only shape worth caching.
func (opts *ProductListOptions) isPlainListing() bool {
	return opts.SearchTerm == "" && opts.CreatedAfter == nil && opts.CreatedBefore == nil
}

// List retrieves products in insertion order with filtering and pagination.
// The plain listing goes through the cache.
func (ps *ProductService) List(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if opts.isPlainListing() {
		cached, total, err := ps.cacheService.GetProductList(opts.Page, opts.PageSize)
		if err != nil {
			ps.logger.Warn("Failed to get product list from cache", gecho.Field("error", err))
		} else if cached != nil {
			return cachedListResult(opts, cached, total, startTime), nil
		}
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](ps.db)
	query = ps.applyFilters(query, opts)

	// Stable insertion order for list endpoints
	query = query.OrderBy("created_at", database.ASC).OrderBy("id", database.ASC)

	if opts.IncludeCategories {
		query = query.Relation("Categories")
	}
	if opts.IncludeType {
		query = query.Relation("Type")
	}

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if opts.isPlainListing() {
		go func() {
			if err := ps.cacheService.SetProductList(opts.Page, opts.PageSize, result.Data, result.Pagination.Total); err != nil {
				ps.logger.Warn("Failed to cache product list", gecho.Field("error", err))
			}
		}()
	}

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}, nil
}

// cachedListResult shapes a cache hit like a database page: the total comes
// from the cached count, never from the page length.
func cachedListResult(opts *ProductListOptions, products []tables.Product, total int, start time.Time) *ProductListResult {
	return &ProductListResult{
		Products: products,
		Pagination: database.Pagination{
			Page:     opts.Page,
			PageSize: opts.PageSize,
			Total:    total,
		},
		QueryTime: time.Since(start),
	}
}

// ListByCategorySlug returns the products whose category set includes the
// named category. Membership is direct: no sibling or descendant leakage.
// An existing category with no products yields an empty list, not an error.
func (ps *ProductService) ListByCategorySlug(ctx context.Context, slug string) ([]tables.Product, error) {
	category, err := ps.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := database.RawQuery[tables.Product](ps.db, ctx,
		`SELECT p.* FROM products AS p
		 JOIN product_categories AS pc ON pc.product_id = p.id
		 WHERE pc.category_id = ?
		 ORDER BY p.created_at ASC, p.id ASC`,
		category.Id,
	)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if products == nil {
		products = []tables.Product{}
	}
	return products, nil
}

// GetByID retrieves a single product with its type and categories
func (ps *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	cached, err := ps.cacheService.GetProductByID(id.String())
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cached != nil {
		return cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Relation("Type").
		Relation("Categories").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by ID", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	go func() {
		if err := ps.cacheService.SetProductByID(product); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
		}
	}()

	return product, nil
}

// GetBySlug retrieves a single product by slug
func (ps *ProductService) GetBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("slug", slug).
		Relation("Type").
		Relation("Categories").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// Create inserts a product and its category memberships. Slug uniqueness is
// storage-enforced and mapped to a conflict.
func (ps *ProductService) Create(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	product := &tables.Product{
		Id:            uuid.New(),
		Name:          lib.SanitizeString(req.Name, true, false),
		Slug:          lib.NormalizeSlug(req.Slug),
		Summary:       req.Summary,
		Content:       req.Content,
		ProductTypeId: req.ProductTypeId,
	}
	if product.Slug == "" {
		product.Slug = lib.Slugify(product.Name)
	}

	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(product).Exec(ctx); err != nil {
			return err
		}
		return insertProductCategories(ctx, tx, product.Id, req.CategoryIds)
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			ps.logger.Warn("Product creation failed - duplicate slug", gecho.Field("slug", product.Slug))
		} else {
			ps.logger.Error("Failed to create product", gecho.Field("error", err), gecho.Field("name", req.Name))
		}
		return nil, mappedErr
	}

	ps.invalidateCaches(product.Id)
	ps.logger.Info("Product created", gecho.Field("id", product.Id), gecho.Field("slug", product.Slug))
	return product, nil
}

// Update rewrites a product's fields and, when category ids are provided,
// replaces its category memberships.
func (ps *ProductService) Update(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	current, err := database.FindByID[tables.Product](ps.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if current == nil {
		return nil, lib.ErrNotFound
	}

	err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		update := tx.NewUpdate().
			Model((*tables.Product)(nil)).
			Set("name = ?", lib.SanitizeString(req.Name, true, false)).
			Set("summary = ?", req.Summary).
			Set("content = ?", req.Content).
			Set("product_type_id = ?", req.ProductTypeId).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id)
		if req.Slug != "" {
			update = update.Set("slug = ?", lib.NormalizeSlug(req.Slug))
		}
		if _, err := update.Exec(ctx); err != nil {
			return err
		}

		if req.CategoryIds != nil {
			if _, err := tx.NewDelete().
				Model((*tables.ProductCategory)(nil)).
				Where("product_id = ?", id).
				Exec(ctx); err != nil {
				return err
			}
			return insertProductCategories(ctx, tx, id, req.CategoryIds)
		}

		return nil
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.invalidateCaches(id)
	return ps.GetByID(ctx, id)
}

// Delete removes a product and its category memberships
func (ps *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.ProductCategory)(nil)).
			Where("product_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*tables.Product)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return lib.MapPgError(err)
	}

	ps.invalidateCaches(id)
	ps.logger.Info("Product deleted", gecho.Field("id", id))
	return nil
}

func insertProductCategories(ctx context.Context, tx bun.Tx, productId uuid.UUID, categoryIds []uuid.UUID) error {
	if len(categoryIds) == 0 {
		return nil
	}

	memberships := make([]tables.ProductCategory, 0, len(categoryIds))
	for _, categoryId := range categoryIds {
		memberships = append(memberships, tables.ProductCategory{
			ProductId:  productId,
			CategoryId: categoryId,
		})
	}

	_, err := tx.NewInsert().Model(&memberships).Exec(ctx)
	return err
}

func (ps *ProductService) invalidateCaches(productId uuid.UUID) {
	go func() {
		if err := ps.cacheService.InvalidateProductCaches(productId); err != nil {
			ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err), gecho.Field("product_id", productId))
		}
	}()
}

// applyDefaultOptions sets default values for unspecified options
func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if opts.PageSize > 100 {
		opts.PageSize = 100 // Max page size for performance
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(name ILIKE ? OR summary ILIKE ? OR content ILIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if opts.CreatedAfter != nil {
		query = query.WhereOp("created_at", ">=", *opts.CreatedAfter)
	}
	if opts.CreatedBefore != nil {
		query = query.WhereOp("created_at", "<=", *opts.CreatedBefore)
	}

	return query
}
