package services

import (
	"context"
	"time"

	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type SupplierService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewSupplierService(logger *gecho.Logger, db *database.DB) *SupplierService {
	return &SupplierService{
		logger: logger,
		db:     db,
	}
}

// Create inserts a supplier with its optional one-to-one address. Phone and
// email formats are validated by tags; uniqueness of both is storage-enforced
// and mapped to a conflict here.
func (ss *SupplierService) Create(ctx context.Context, req *structs.SupplierRequest) (*tables.Supplier, error) {
	supplier := &tables.Supplier{
		Id:           uuid.New(),
		Name:         lib.SanitizeString(req.Name, true, false),
		MobileNumber: req.MobileNumber,
		Email:        lib.SanitizeString(req.Email, true, true),
	}

	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if req.Address != nil {
			address := &tables.Address{Id: uuid.New()}
			applyAddressRequest(address, req.Address)
			if _, err := tx.NewInsert().Model(address).Exec(ctx); err != nil {
				return err
			}
			supplier.AddressId = &address.Id
			supplier.Address = address
		}

		_, err := tx.NewInsert().Model(supplier).Exec(ctx)
		return err
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			ss.logger.Warn("Supplier creation failed - duplicate email or mobile number",
				gecho.Field("email", req.Email),
			)
		} else {
			ss.logger.Error("Failed to create supplier", gecho.Field("error", err), gecho.Field("name", req.Name))
		}
		return nil, mappedErr
	}

	ss.logger.Info("Supplier created", gecho.Field("id", supplier.Id))
	return supplier, nil
}

// Update rewrites a supplier and upserts its address row
func (ss *SupplierService) Update(ctx context.Context, id uuid.UUID, req *structs.SupplierRequest) (*tables.Supplier, error) {
	current, err := database.FindByID[tables.Supplier](ss.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if current == nil {
		return nil, lib.ErrNotFound
	}

	err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if req.Address != nil {
			if current.AddressId == nil {
				address := &tables.Address{Id: uuid.New()}
				applyAddressRequest(address, req.Address)
				if _, err := tx.NewInsert().Model(address).Exec(ctx); err != nil {
					return err
				}
				current.AddressId = &address.Id
			} else {
				address := &tables.Address{Id: *current.AddressId}
				applyAddressRequest(address, req.Address)
				address.UpdatedAt = time.Now()
				if _, err := tx.NewUpdate().
					Model(address).
					Column("full_name", "phone", "postcode", "address_line1", "address_line2", "town_city", "delivery_instructions", "updated_at").
					Where("id = ?", *current.AddressId).
					Exec(ctx); err != nil {
					return err
				}
			}
		}

		_, err := tx.NewUpdate().
			Model((*tables.Supplier)(nil)).
			Set("name = ?", lib.SanitizeString(req.Name, true, false)).
			Set("mobile_number = ?", req.MobileNumber).
			Set("email = ?", lib.SanitizeString(req.Email, true, true)).
			Set("address_id = ?", current.AddressId).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return ss.GetByID(ctx, id)
}

// GetByID returns one supplier with its address
func (ss *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*tables.Supplier, error) {
	supplier, err := database.Query[tables.Supplier](ss.db).
		Where("id", id).
		Relation("Address").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if supplier == nil {
		return nil, lib.ErrNotFound
	}
	return supplier, nil
}

// List returns suppliers in insertion order, paginated
func (ss *SupplierService) List(ctx context.Context, page, pageSize int) (*database.PaginationResult[tables.Supplier], error) {
	query := database.Query[tables.Supplier](ss.db).
		Relation("Address").
		OrderBy("created_at", database.ASC).
		OrderBy("id", database.ASC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// Delete removes a supplier. Inventory references block deletion via the
// foreign key, surfaced as a protected-record error.
func (ss *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Query[tables.Supplier](ss.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ss.logger.Info("Supplier deleted", gecho.Field("id", id))
	return nil
}
