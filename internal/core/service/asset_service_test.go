package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

func TestAssetService_CreateAndUpdate(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo, &recordingAudit{}, zerolog.Nop())
	actor := &domain.User{ID: "1", Username: "alice", Role: domain.RoleRegular}

	asset, err := svc.Create(context.Background(), actor, ports.CreateAssetInput{
		Category:   "Laptop",
		Comments:   "dev machine",
		CustomerID: "c1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if asset.UserID != "1" {
		t.Fatalf("asset should record the creating user, got %q", asset.UserID)
	}

	updated, err := svc.Update(context.Background(), actor, asset.ID, ports.UpdateAssetInput{
		Category: "Desktop",
		Comments: "reassigned",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Category != "Desktop" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestAssetService_UpdateMissing(t *testing.T) {
	svc := NewAssetService(newStubAssetRepo(), &recordingAudit{}, zerolog.Nop())
	actor := &domain.User{ID: "1", Username: "alice", Role: domain.RoleRegular}

	if _, err := svc.Update(context.Background(), actor, "999", ports.UpdateAssetInput{Category: "Laptop"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssetService_DeleteDeniedForRegular(t *testing.T) {
	repo := newStubAssetRepo()
	audit := &recordingAudit{}
	svc := NewAssetService(repo, audit, zerolog.Nop())
	regular := &domain.User{ID: "1", Username: "alice", Role: domain.RoleRegular}

	asset, err := svc.Create(context.Background(), regular, ports.CreateAssetInput{Category: "Monitor"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), regular, asset.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// Denied delete leaves the record in place.
	if _, err := repo.FindByID(context.Background(), asset.ID); err != nil {
		t.Fatalf("asset should still exist: %v", err)
	}

	kinds := audit.kinds()
	if len(kinds) == 0 || kinds[len(kinds)-1] != domain.AuditDeleteDenied {
		t.Fatalf("expected a delete_denied audit event, got %v", kinds)
	}
}

func TestAssetService_DeleteAllowedForAdmin(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo, &recordingAudit{}, zerolog.Nop())
	admin := &domain.User{ID: "2", Username: "root", Role: domain.RoleAdmin}

	asset, err := svc.Create(context.Background(), admin, ports.CreateAssetInput{Category: "Server"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), admin, asset.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), asset.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("asset should be gone, got %v", err)
	}
}

func TestAssetService_DeleteMissing(t *testing.T) {
	svc := NewAssetService(newStubAssetRepo(), &recordingAudit{}, zerolog.Nop())
	admin := &domain.User{ID: "2", Username: "root", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin, "999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
