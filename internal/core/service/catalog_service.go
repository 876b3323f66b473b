package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

// CatalogService implements customer and manufacturer CRUD. Deletion uses the
// same gate as assets; everything else is open to authenticated users.
type CatalogService struct {
	customers     ports.CustomerRepository
	manufacturers ports.ManufacturerRepository
	audit         ports.AuditRecorder
	log           zerolog.Logger
}

func NewCatalogService(
	customers ports.CustomerRepository,
	manufacturers ports.ManufacturerRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		customers:     customers,
		manufacturers: manufacturers,
		audit:         audit,
		log:           log,
	}
}

func (s *CatalogService) CreateCustomer(ctx context.Context, actor *domain.User, name string) (*domain.Customer, error) {
	created, err := s.customers.Create(ctx, &domain.Customer{Name: name})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.log.Info().Str("username", actor.Username).Str("name", name).Msg("customer created")
	return created, nil
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CatalogService) UpdateCustomer(ctx context.Context, actor *domain.User, id, name string) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = name
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("customer_id", id).Msg("customer updated")
	return customer, nil
}

func (s *CatalogService) DeleteCustomer(ctx context.Context, actor *domain.User, id string) error {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return err
	}

	if !actor.CanDelete() {
		s.denyDelete(actor, "customer")
		return domain.ErrForbidden
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("customer_id", id).Msg("customer deleted")
	s.audit.Record(domain.AuditEvent{
		Kind:     domain.AuditDeleteAllowed,
		Username: actor.Username,
		Resource: "customer",
	})
	return nil
}

func (s *CatalogService) CreateManufacturer(ctx context.Context, actor *domain.User, name string) (*domain.Manufacturer, error) {
	created, err := s.manufacturers.Create(ctx, &domain.Manufacturer{Name: name})
	if err != nil {
		return nil, fmt.Errorf("create manufacturer: %w", err)
	}
	s.log.Info().Str("username", actor.Username).Str("name", name).Msg("manufacturer created")
	return created, nil
}

func (s *CatalogService) ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error) {
	return s.manufacturers.List(ctx)
}

func (s *CatalogService) UpdateManufacturer(ctx context.Context, actor *domain.User, id, name string) (*domain.Manufacturer, error) {
	manufacturer, err := s.manufacturers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	manufacturer.Name = name
	if err := s.manufacturers.Update(ctx, manufacturer); err != nil {
		return nil, fmt.Errorf("update manufacturer: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("manufacturer_id", id).Msg("manufacturer updated")
	return manufacturer, nil
}

func (s *CatalogService) DeleteManufacturer(ctx context.Context, actor *domain.User, id string) error {
	if _, err := s.manufacturers.FindByID(ctx, id); err != nil {
		return err
	}

	if !actor.CanDelete() {
		s.denyDelete(actor, "manufacturer")
		return domain.ErrForbidden
	}

	if err := s.manufacturers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete manufacturer: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("manufacturer_id", id).Msg("manufacturer deleted")
	s.audit.Record(domain.AuditEvent{
		Kind:     domain.AuditDeleteAllowed,
		Username: actor.Username,
		Resource: "manufacturer",
	})
	return nil
}

func (s *CatalogService) denyDelete(actor *domain.User, resource string) {
	username := ""
	if actor != nil {
		username = actor.Username
	}
	s.log.Warn().Str("username", username).Str("resource", resource).Msg("delete denied")
	s.audit.Record(domain.AuditEvent{
		Kind:     domain.AuditDeleteDenied,
		Username: username,
		Resource: resource,
	})
}
