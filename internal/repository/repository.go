package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"taxi-service/internal/model"
	"taxi-service/internal/search"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

const uniqueViolationCode = "23505"

// ListParams selects one page of a searchable list. Query is matched
// case-insensitively as a substring of the entity's search field.
type ListParams struct {
	Query    string
	Page     int
	PageSize int
}

type ListResult[T any] struct {
	Items []T
	Page  search.PageInfo
}

type ManufacturerStore interface {
	List(ctx context.Context, params ListParams) (ListResult[model.Manufacturer], error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error)
	Create(ctx context.Context, manufacturer *model.Manufacturer) error
	Update(ctx context.Context, manufacturer *model.Manufacturer) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type DriverStore interface {
	List(ctx context.Context, params ListParams) (ListResult[model.Driver], error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	GetByUsername(ctx context.Context, username string) (*model.Driver, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Driver, error)
	Create(ctx context.Context, driver *model.Driver) error
	UpdateLicenseNumber(ctx context.Context, id uuid.UUID, licenseNumber string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type CarStore interface {
	List(ctx context.Context, params ListParams) (ListResult[model.Car], error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Car, error)
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	AddDriver(ctx context.Context, carID, driverID uuid.UUID) error
	RemoveDriver(ctx context.Context, carID, driverID uuid.UUID) error
}

// Stores groups the stores of one backend.
type Stores struct {
	Manufacturers ManufacturerStore
	Drivers       DriverStore
	Cars          CarStore
}

// NewStores returns the Postgres-backed stores.
func NewStores(db *gorm.DB) Stores {
	return Stores{
		Manufacturers: NewManufacturerRepository(db),
		Drivers:       NewDriverRepository(db),
		Cars:          NewCarRepository(db),
	}
}

// translateError maps driver errors onto ErrNotFound and ErrDuplicate.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}

// searchScope restricts a query to rows whose column contains query.
func searchScope(column, query string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(query) == "" {
			return db
		}
		return db.Where(column+" ILIKE ?", search.ILikePattern(query))
	}
}

// list runs the count and page queries for a searchable table.
func list[T any](ctx context.Context, db *gorm.DB, params ListParams, column, order string, preload ...string) (ListResult[T], error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(searchScope(column, params.Query)).Count(&total).Error; err != nil {
		return ListResult[T]{}, err
	}

	page, err := search.NewPageInfo(params.Page, params.PageSize, total)
	if err != nil {
		return ListResult[T]{}, err
	}

	items := make([]T, 0)
	if err := pageQuery(db.WithContext(ctx), column, params.Query, order, page, preload...).Find(&items).Error; err != nil {
		return ListResult[T]{}, err
	}

	return ListResult[T]{Items: items, Page: page}, nil
}

// pageQuery selects the rows of one page in the given order.
func pageQuery(db *gorm.DB, column, query, order string, page search.PageInfo, preload ...string) *gorm.DB {
	db = db.Scopes(searchScope(column, query)).Order(order)
	for _, association := range preload {
		db = db.Preload(association)
	}
	if page.Size > 0 {
		db = db.Offset(page.Offset()).Limit(page.Size)
	}
	return db
}

func count[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}
