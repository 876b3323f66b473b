package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

// AssetService implements asset CRUD. Create, List, and Update are open to
// every authenticated user; Delete goes through the role gate.
type AssetService struct {
	assets ports.AssetRepository
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAssetService(assets ports.AssetRepository, audit ports.AuditRecorder, log zerolog.Logger) *AssetService {
	return &AssetService{assets: assets, audit: audit, log: log}
}

func (s *AssetService) Create(ctx context.Context, actor *domain.User, input ports.CreateAssetInput) (*domain.Asset, error) {
	asset := &domain.Asset{
		Category:       input.Category,
		Comments:       input.Comments,
		UserID:         actor.ID,
		CustomerID:     input.CustomerID,
		ManufacturerID: input.ManufacturerID,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.assets.Create(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("category", created.Category).Msg("asset created")
	return created, nil
}

func (s *AssetService) List(ctx context.Context) ([]*domain.Asset, error) {
	return s.assets.List(ctx)
}

func (s *AssetService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateAssetInput) (*domain.Asset, error) {
	asset, err := s.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.Category = input.Category
	asset.Comments = input.Comments
	asset.CustomerID = input.CustomerID
	asset.ManufacturerID = input.ManufacturerID

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("update asset: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("asset_id", id).Msg("asset updated")
	return asset, nil
}

// Delete removes an asset. Only admins pass the gate; a denied attempt is
// audited and surfaced as domain.ErrForbidden.
func (s *AssetService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if _, err := s.assets.FindByID(ctx, id); err != nil {
		return err
	}

	if !actor.CanDelete() {
		s.denyDelete(actor, "asset")
		return domain.ErrForbidden
	}

	if err := s.assets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}

	s.log.Info().Str("username", actor.Username).Str("asset_id", id).Msg("asset deleted")
	s.audit.Record(domain.AuditEvent{
		Kind:     domain.AuditDeleteAllowed,
		Username: actor.Username,
		Resource: "asset",
	})
	return nil
}

func (s *AssetService) denyDelete(actor *domain.User, resource string) {
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
