package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yolku/staffing-backend/internal/cache"
	"github.com/yolku/staffing-backend/internal/models"
)

// PositionStore is the read surface the discovery engine runs against.
// The live implementation queries Postgres; the fixture implementation
// serves seeded in-memory data for demo deployments and tests.
type PositionStore interface {
	FindPositions(q *models.PositionQuery) ([]models.PositionWithFacility, error)
	GetPositionByID(id uuid.UUID) (*models.PositionWithFacility, error)
	ListAvailableStates() ([]string, error)
}

// DiscoveryService exposes the worker-facing position discovery
// operations: filtered listing, per-position detail, and the states
// enumeration used to drive the location filter UI.
type DiscoveryService struct {
	store  PositionStore
	cache  *cache.StateCache
	logger *logrus.Logger
}

// NewDiscoveryService creates a discovery service. cache may be nil,
// in which case the states listing is always computed from the store.
func NewDiscoveryService(store PositionStore, stateCache *cache.StateCache, logger *logrus.Logger) *DiscoveryService {
	return &DiscoveryService{
		store:  store,
		cache:  stateCache,
		logger: logger,
	}
}

// FindPositions validates and normalizes the raw filter, then runs the
// discovery query. Invalid filter input surfaces as *models.ValidationError
// before the store is touched.
func (s *DiscoveryService) FindPositions(filter *models.PositionFilter) ([]models.PositionWithFacility, error) {
	q, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	positions, err := s.store.FindPositions(q)
	if err != nil {
		return nil, fmt.Errorf("failed to find positions: %w", err)
	}

	return positions, nil
}

// GetPosition returns a single position with full facility detail, or
// nil when no position has the given ID.
func (s *DiscoveryService) GetPosition(id uuid.UUID) (*models.PositionWithFacility, error) {
	position, err := s.store.GetPositionByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	return position, nil
}

// ListAvailableStates returns the distinct states that currently have
// available positions, cache-first. Cache misses and cache errors both
// fall through to the store; cache writes are best-effort.
func (s *DiscoveryService) ListAvailableStates(ctx context.Context) ([]string, error) {
	if states, ok := s.cache.Get(ctx); ok {
		return states, nil
	}

	states, err := s.store.ListAvailableStates()
	if err != nil {
		return nil, fmt.Errorf("failed to list available states: %w", err)
	}

	s.cache.Set(ctx, states)

	return states, nil
}
