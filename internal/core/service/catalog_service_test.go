package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/itops/asset-tracker/internal/core/domain"
)

func newTestCatalogService() (*CatalogService, *stubCustomerRepo, *stubManufacturerRepo, *recordingAudit) {
	customers := newStubCustomerRepo()
	manufacturers := newStubManufacturerRepo()
	audit := &recordingAudit{}
	svc := NewCatalogService(customers, manufacturers, audit, zerolog.Nop())
	return svc, customers, manufacturers, audit
}

func TestCatalogService_CustomerCRUD(t *testing.T) {
	svc, _, _, _ := newTestCatalogService()
	actor := &domain.User{ID: "1", Username: "alice", Role: domain.RoleRegular}

	customer, err := svc.CreateCustomer(context.Background(), actor, "Initech")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateCustomer(context.Background(), actor, customer.ID, "Initrode")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Initrode" {
		t.Fatalf("update not applied: %+v", updated)
	}

	list, err := svc.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(list))
	}
}

func TestCatalogService_DeleteGateAppliesToAllResources(t *testing.T) {
	svc, customers, manufacturers, _ := newTestCatalogService()
	regular := &domain.User{ID: "1", Username: "alice", Role: domain.RoleRegular}
	admin := &domain.User{ID: "2", Username: "root", Role: domain.RoleAdmin}

	customer, _ := svc.CreateCustomer(context.Background(), regular, "Initech")
	manufacturer, _ := svc.CreateManufacturer(context.Background(), regular, "Acme")

	if err := svc.DeleteCustomer(context.Background(), regular, customer.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customer delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteManufacturer(context.Background(), regular, manufacturer.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manufacturer delete: expected ErrForbidden, got %v", err)
	}
	if _, err := customers.FindByID(context.Background(), customer.ID); err != nil {
		t.Fatalf("customer should survive the denied delete: %v", err)
	}

	if err := svc.DeleteCustomer(context.Background(), admin, customer.ID); err != nil {
		t.Fatalf("admin customer delete failed: %v", err)
	}
	if err := svc.DeleteManufacturer(context.Background(), admin, manufacturer.ID); err != nil {
		t.Fatalf("admin manufacturer delete failed: %v", err)
	}
	if _, err := manufacturers.FindByID(context.Background(), manufacturer.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("manufacturer should be gone, got %v", err)
	}
}

func TestCatalogService_UpdateMissing(t *testing.T) {
	svc, _, _, _ := newTestCatalogService()
	actor := &domain.User{ID: "1", Username: "alice", Role: domain.RoleRegular}

	if _, err := svc.UpdateCustomer(context.Background(), actor, "999", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateManufacturer(context.Background(), actor, "999", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
