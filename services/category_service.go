package services

import (
	"context"
	"sort"
	"time"

	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CategoryService maintains the category forest. The tree is indexed by the
// category_paths closure table: one row per (ancestor, descendant) pair
// including the depth-0 self pair, so ancestor and descendant lookups are
// single queries regardless of depth. Every mutation keeps the closure rows
// consistent inside the same transaction as the category row.
type CategoryService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCategoryService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CategoryService {
	return &CategoryService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// Create inserts a category under the optional parent. The parent must
// already exist; self-parenting is impossible here since the id is fresh.
func (cs *CategoryService) Create(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	category := &tables.Category{
		Id:       uuid.New(),
		Name:     lib.SanitizeString(req.Name, true, false),
		Slug:     lib.NormalizeSlug(req.Slug),
		Content:  req.Content,
		IsActive: true,
		ParentId: req.ParentId,
	}
	if category.Slug == "" {
		category.Slug = lib.Slugify(category.Name)
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if req.ParentId != nil {
			exists, err := tx.NewSelect().
				Model((*tables.Category)(nil)).
				Where("id = ?", *req.ParentId).
				Exists(ctx)
			if err != nil {
				return err
			}
			if !exists {
				return lib.ErrInvalidParent
			}
		}

		if _, err := tx.NewInsert().Model(category).Exec(ctx); err != nil {
			return err
		}

		// Self row, then one row per ancestor of the parent
		selfPath := &tables.CategoryPath{AncestorId: category.Id, DescendantId: category.Id, Depth: 0}
		if _, err := tx.NewInsert().Model(selfPath).Exec(ctx); err != nil {
			return err
		}

		if req.ParentId != nil {
			if _, err := tx.NewRaw(
				`INSERT INTO category_paths (ancestor_id, descendant_id, depth)
				 SELECT ancestor_id, ?, depth + 1 FROM category_paths WHERE descendant_id = ?`,
				category.Id, *req.ParentId,
			).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			cs.logger.Warn("Category creation failed - duplicate slug", gecho.Field("slug", category.Slug))
		} else {
			cs.logger.Error("Failed to create category", gecho.Field("error", err), gecho.Field("name", req.Name))
		}
		return nil, mappedErr
	}

	cs.invalidateCaches()
	cs.logger.Info("Category created", gecho.Field("id", category.Id), gecho.Field("slug", category.Slug))
	return category, nil
}

// Update modifies a category; changing the parent rewires the closure rows
// for the whole subtree. A parent inside the category's own subtree would
// create a cycle and is rejected.
func (cs *CategoryService) Update(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*tables.Category, error) {
	current, err := database.FindByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if current == nil {
		return nil, lib.ErrNotFound
	}

	err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		reparenting := !uuidPtrEqual(current.ParentId, req.ParentId)

		if reparenting && req.ParentId != nil {
			exists, err := tx.NewSelect().
				Model((*tables.Category)(nil)).
				Where("id = ?", *req.ParentId).
				Exists(ctx)
			if err != nil {
				return err
			}
			if !exists {
				return lib.ErrInvalidParent
			}

			var subtree []tables.CategoryPath
			if err := tx.NewSelect().
				Model(&subtree).
				Where("ancestor_id = ?", id).
				Scan(ctx); err != nil {
				return err
			}
			if err := validateReparent(*req.ParentId, subtree); err != nil {
				return err
			}
		}

		update := tx.NewUpdate().
			Model((*tables.Category)(nil)).
			Set("name = ?", lib.SanitizeString(req.Name, true, false)).
			Set("content = ?", req.Content).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id)
		if req.Slug != "" {
			update = update.Set("slug = ?", lib.NormalizeSlug(req.Slug))
		}
		if req.IsActive != nil {
			update = update.Set("is_active = ?", *req.IsActive)
		}
		if reparenting {
			update = update.Set("parent_id = ?", req.ParentId)
		}
		if _, err := update.Exec(ctx); err != nil {
			return err
		}

		if !reparenting {
			return nil
		}

		// Detach the subtree from its old ancestors
		if _, err := tx.NewRaw(
			`DELETE FROM category_paths
			 WHERE descendant_id IN (SELECT descendant_id FROM category_paths WHERE ancestor_id = ?)
			   AND ancestor_id NOT IN (SELECT descendant_id FROM category_paths WHERE ancestor_id = ?)`,
			id, id,
		).Exec(ctx); err != nil {
			return err
		}

		// Attach it under the new parent
		if req.ParentId != nil {
			if _, err := tx.NewRaw(
				`INSERT INTO category_paths (ancestor_id, descendant_id, depth)
				 SELECT supertree.ancestor_id, subtree.descendant_id, supertree.depth + subtree.depth + 1
				 FROM category_paths AS supertree
				 CROSS JOIN category_paths AS subtree
				 WHERE supertree.descendant_id = ? AND subtree.ancestor_id = ?`,
				*req.ParentId, id,
			).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)
		cs.logger.Warn("Failed to update category",
			gecho.Field("id", id),
			gecho.Field("error", lib.GetDetailForLogging(mappedErr)),
		)
		return nil, mappedErr
	}

	cs.invalidateCaches()
	return database.FindByID[tables.Category](cs.db, ctx, id)
}

// Delete removes a category. Categories with children are protected; the
// caller has to reparent or delete the children first. Product references
// block deletion the same way.
func (cs *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*tables.Category)(nil)).
			Where("id = ?", id).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return lib.ErrNotFound
		}

		var subtree []tables.CategoryPath
		if err := tx.NewSelect().
			Model(&subtree).
			Where("ancestor_id = ?", id).
			Scan(ctx); err != nil {
			return err
		}

		referenced, err := tx.NewSelect().
			Model((*tables.ProductCategory)(nil)).
			Where("category_id = ?", id).
			Exists(ctx)
		if err != nil {
			return err
		}

		if err := deleteBlocked(subtree, referenced); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*tables.CategoryPath)(nil)).
			Where("descendant_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*tables.Category)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return lib.MapPgError(err)
	}

	cs.invalidateCaches()
	cs.logger.Info("Category deleted", gecho.Field("id", id))
	return nil
}

// Ancestors returns the parent chain of a category in root-to-parent order,
// in one query over the closure table.
func (cs *CategoryService) Ancestors(ctx context.Context, id uuid.UUID) ([]tables.Category, error) {
	ancestors, err := database.RawQuery[tables.Category](cs.db, ctx,
		`SELECT c.* FROM categories AS c
		 JOIN category_paths AS cp ON cp.ancestor_id = c.id
		 WHERE cp.descendant_id = ? AND cp.depth > 0
		 ORDER BY cp.depth DESC`,
		id,
	)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return ancestors, nil
}

// Descendants returns the subtree below a category in tree order with
// siblings sorted by name. One query fetches the nodes; ordering is
// assembled in memory from the parent pointers.
func (cs *CategoryService) Descendants(ctx context.Context, id uuid.UUID) ([]*tables.Category, error) {
	nodes, err := database.RawQuery[tables.Category](cs.db, ctx,
		`SELECT c.* FROM categories AS c
		 JOIN category_paths AS cp ON cp.descendant_id = c.id
		 WHERE cp.ancestor_id = ? AND cp.depth > 0`,
		id,
	)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	forest := BuildCategoryTree(nodes)
	return FlattenCategoryTree(forest), nil
}

// Tree returns the whole category forest with children nested, siblings in
// name order.
func (cs *CategoryService) Tree(ctx context.Context) ([]*tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return BuildCategoryTree(categories), nil
}

// ListActive returns the active categories ordered by name, cache first.
func (cs *CategoryService) ListActive(ctx context.Context) ([]tables.Category, error) {
	cached, err := cs.cacheService.GetCategoryList()
	if err != nil {
		cs.logger.Warn("Failed to get categories from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	categories, err := database.Query[tables.Category](cs.db).
		Where("is_active", true).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	go func() {
		if err := cs.cacheService.SetCategoryList(categories); err != nil {
			cs.logger.Warn("Failed to cache category list", gecho.Field("error", err))
		}
	}()

	return categories, nil
}

// GetBySlug returns a category by its slug.
func (cs *CategoryService) GetBySlug(ctx context.Context, slug string) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).Where("slug", slug).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

func (cs *CategoryService) invalidateCaches() {
	go func() {
		if err := cs.cacheService.InvalidateCategoryCaches(); err != nil {
			cs.logger.Warn("Failed to invalidate category caches", gecho.Field("error", err))
		}
	}()
}

// validateReparent rejects a new parent that sits inside the category's own
// subtree, which would cycle the closure table. The subtree rows include the
// depth-0 self pair, so self-parenting fails the same check.
func validateReparent(newParent uuid.UUID, subtree []tables.CategoryPath) error {
	for _, path := range subtree {
		if path.DescendantId == newParent {
			return lib.ErrInvalidParent
		}
	}
	return nil
}

// deleteBlocked enforces the PROTECT semantics on delete: a category with
// child rows (depth-1 closure pairs) or product references stays.
func deleteBlocked(subtree []tables.CategoryPath, referenced bool) error {
	for _, path := range subtree {
		if path.Depth == 1 {
			return lib.ErrCategoryProtected
		}
	}
	if referenced {
		return lib.ErrCategoryProtected
	}
	return nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// BuildCategoryTree nests flat category rows into a forest using their
// parent pointers. Nodes whose parent is absent from the input become
// roots, so a subtree fetch roots at the fetched boundary. Siblings are
// sorted by name at every level.
func BuildCategoryTree(categories []tables.Category) []*tables.Category {
	byId := make(map[uuid.UUID]*tables.Category, len(categories))
	for i := range categories {
		node := categories[i]
		node.Children = nil
		byId[node.Id] = &node
	}

	var roots []*tables.Category
	for _, node := range byId {
		if node.ParentId != nil {
			if parent, ok := byId[*node.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var sortLevel func(nodes []*tables.Category)
	sortLevel = func(nodes []*tables.Category) {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
		for _, node := range nodes {
			sortLevel(node.Children)
		}
	}
	sortLevel(roots)

	return roots
}

// FlattenCategoryTree walks a forest depth-first and returns the nodes in
// tree order as a flat list (children are unnested along the way).
func FlattenCategoryTree(forest []*tables.Category) []*tables.Category {
	var out []*tables.Category
	var walk func(nodes []*tables.Category)
	walk = func(nodes []*tables.Category) {
		for _, node := range nodes {
			children := node.Children
			node.Children = nil
			out = append(out, node)
			walk(children)
		}
	}
	walk(forest)
	return out
}
