package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/itops/asset-tracker/internal/core/domain"
)

// In-memory doubles for the repository and store ports, shared by the tests
// in this package.

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // keyed by username
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) setRole(username, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		u.Role = role
	}
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Save(_ context.Context, token, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.sessions[token]; ok {
		return id, nil
	}
	return "", domain.ErrUnauthorized
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

type stubRateStore struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func newStubRateStore() *stubRateStore {
	return &stubRateStore{attempts: make(map[string][]time.Time)}
}

func (s *stubRateStore) RecordAttempt(_ context.Context, key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[key] = append(s.attempts[key], at)
	return nil
}

func (s *stubRateStore) CountAttempts(_ context.Context, key string, window time.Duration, reference time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, at := range s.attempts[key] {
		if !at.Before(reference.Add(-window)) && !at.After(reference) {
			count++
		}
	}
	return count, nil
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) kinds() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Kind)
	}
	return out
}

type stubAssetRepo struct {
	mu     sync.Mutex
	assets map[string]*domain.Asset
	nextID int
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[string]*domain.Asset)}
}

func (r *stubAssetRepo) Create(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *asset
	created.ID = strconv.Itoa(r.nextID)
	r.assets[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id string) (*domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.assets[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubAssetRepo) List(_ context.Context) ([]*domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAssetRepo) Update(_ context.Context, asset *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[asset.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *asset
	r.assets[asset.ID] = &clone
	return nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

type stubCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *c
	created.ID = strconv.Itoa(r.nextID)
	r.customers[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.customers[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

type stubManufacturerRepo struct {
	mu            sync.Mutex
	manufacturers map[string]*domain.Manufacturer
	nextID        int
}

func newStubManufacturerRepo() *stubManufacturerRepo {
	return &stubManufacturerRepo{manufacturers: make(map[string]*domain.Manufacturer)}
}

func (r *stubManufacturerRepo) Create(_ context.Context, m *domain.Manufacturer) (*domain.Manufacturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *m
	created.ID = strconv.Itoa(r.nextID)
	r.manufacturers[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubManufacturerRepo) FindByID(_ context.Context, id string) (*domain.Manufacturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.manufacturers[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubManufacturerRepo) List(_ context.Context) ([]*domain.Manufacturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Manufacturer, 0, len(r.manufacturers))
	for _, m := range r.manufacturers {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubManufacturerRepo) Update(_ context.Context, m *domain.Manufacturer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.manufacturers[m.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *m
	r.manufacturers[m.ID] = &clone
	return nil
}

func (r *stubManufacturerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.manufacturers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.manufacturers, id)
	return nil
}

type stubAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}
