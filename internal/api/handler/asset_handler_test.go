package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/itops/asset-tracker/internal/api"
	"github.com/itops/asset-tracker/internal/api/handler"
	"github.com/itops/asset-tracker/internal/api/middleware"
	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

type stubAssetService struct {
	deleteFn func(ctx context.Context, actor *domain.User, id string) error
}

func (s *stubAssetService) Create(_ context.Context, actor *domain.User, input ports.CreateAssetInput) (*domain.Asset, error) {
	return &domain.Asset{ID: "1", Category: input.Category, UserID: actor.ID}, nil
}

func (s *stubAssetService) List(_ context.Context) ([]*domain.Asset, error) {
	return nil, nil
}

func (s *stubAssetService) Update(_ context.Context, _ *domain.User, id string, input ports.UpdateAssetInput) (*domain.Asset, error) {
	return &domain.Asset{ID: id, Category: input.Category}, nil
}

func (s *stubAssetService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

// newAssetServer registers the asset routes behind a middleware that injects
// actor, standing in for a resolved session.
func newAssetServer(svc ports.AssetService, actor *domain.User) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	withUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.UserContextKey, actor)
			return next(c)
		}
	}

	h := handler.NewAssetHandler(svc)
	g := e.Group("/v1", withUser)
	g.GET("/assets", h.List)
	g.POST("/assets", h.Create)
	g.DELETE("/assets/:id", h.Delete)
	return e
}

func TestAssetHandler_Delete_Forbidden(t *testing.T) {
	svc := &stubAssetService{
		deleteFn: func(_ context.Context, actor *domain.User, _ string) error {
			if actor.Role != domain.RoleRegular {
				t.Fatalf("unexpected actor role: %s", actor.Role)
			}
			return domain.ErrForbidden
		},
	}
	e := newAssetServer(svc, &domain.User{ID: "1", Username: "bob", Role: domain.RoleRegular})

	req := httptest.NewRequest(http.MethodDelete, "/v1/assets/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	want := `{"error":"You do not have permission to delete this resource."}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAssetHandler_Delete_NotFound(t *testing.T) {
	svc := &stubAssetService{
		deleteFn: func(_ context.Context, _ *domain.User, id string) error {
			if id != "missing" {
				t.Fatalf("unexpected id: %s", id)
			}
			return domain.ErrNotFound
		},
	}
	e := newAssetServer(svc, &domain.User{ID: "1", Username: "root", Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodDelete, "/v1/assets/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAssetHandler_Delete_Admin(t *testing.T) {
	svc := &stubAssetService{
		deleteFn: func(_ context.Context, _ *domain.User, _ string) error {
			return nil
		},
	}
	e := newAssetServer(svc, &domain.User{ID: "1", Username: "root", Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodDelete, "/v1/assets/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAssetHandler_Create_RejectsUnknownCategory(t *testing.T) {
	svc := &stubAssetService{
		deleteFn: func(_ context.Context, _ *domain.User, _ string) error {
			return nil
		},
	}
	e := newAssetServer(svc, &domain.User{ID: "1", Username: "bob", Role: domain.RoleRegular})

	req := httptest.NewRequest(http.MethodPost, "/v1/assets", strings.NewReader(`{"category":"Toaster"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
