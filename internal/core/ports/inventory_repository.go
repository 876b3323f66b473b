package ports

import (
	"context"

	"github.com/itops/asset-tracker/internal/core/domain"
)

// AssetRepository persists hardware assets. FindByID and Delete return
// domain.ErrNotFound for unknown ids.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context) ([]*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

// ManufacturerRepository persists manufacturers.
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error)
	FindByID(ctx context.Context, id string) (*domain.Manufacturer, error)
	List(ctx context.Context) ([]*domain.Manufacturer, error)
	Update(ctx context.Context, manufacturer *domain.Manufacturer) error
	Delete(ctx context.Context, id string) error
}
