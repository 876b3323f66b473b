package ports

import (
	"context"

	"github.com/itops/asset-tracker/internal/core/domain"
)

// CreateAssetInput carries the fields for a new asset.
type CreateAssetInput struct {
	Category       string
	Comments       string
	CustomerID     string
	ManufacturerID string
}

// UpdateAssetInput carries the mutable fields of an asset.
type UpdateAssetInput struct {
	Category       string
	Comments       string
	CustomerID     string
	ManufacturerID string
}

// AssetService implements asset CRUD. Any authenticated user may create,
// read, and update; Delete requires the actor to pass the delete gate.
type AssetService interface {
	Create(ctx context.Context, actor *domain.User, input CreateAssetInput) (*domain.Asset, error)
	List(ctx context.Context) ([]*domain.Asset, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateAssetInput) (*domain.Asset, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}

// CatalogService implements customer and manufacturer CRUD with the same
// delete gate as assets.
type CatalogService interface {
	CreateCustomer(ctx context.Context, actor *domain.User, name string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	UpdateCustomer(ctx context.Context, actor *domain.User, id, name string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, actor *domain.User, id string) error

	CreateManufacturer(ctx context.Context, actor *domain.User, name string) (*domain.Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error)
	UpdateManufacturer(ctx context.Context, actor *domain.User, id, name string) (*domain.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, actor *domain.User, id string) error
}
