// Package fixtures provides an in-memory position store with the same
// discovery semantics as the live repository. It backs demo deployments
// and the engine tests, replacing the hidden mock-data toggle the mobile
// client used to carry: the store is chosen explicitly at construction
// and never switched at runtime.
package fixtures

import (
	"sort"

	"github.com/google/uuid"
	"github.com/yolku/staffing-backend/internal/models"
)

// Store holds facilities and positions in memory. It is read-only after
// seeding, so any number of concurrent lookups are safe without locking.
type Store struct {
	facilities map[uuid.UUID]models.Facility
	positions  []models.Position // insertion order breaks ordering ties
}

// NewStore creates an empty fixture store
func NewStore() *Store {
	return &Store{
		facilities: make(map[uuid.UUID]models.Facility),
	}
}

// AddFacility seeds a facility
func (s *Store) AddFacility(f models.Facility) {
	s.facilities[f.ID] = f
}

// AddPosition seeds a position. Positions referencing an unknown facility
// are never returned by queries.
func (s *Store) AddPosition(p models.Position) {
	s.positions = append(s.positions, p)
}

// available applies the base predicate: position open and active, owning
// facility present and active.
func (s *Store) available(p models.Position) bool {
	if p.Status != models.PositionStatusOpen || !p.IsActive {
		return false
	}
	facility, ok := s.facilities[p.FacilityID]
	return ok && facility.IsActive
}

// FindPositions filters and orders seeded positions with the discovery
// contract: all present filters AND-combined, results ordered by shift
// date then start time, insertion order preserved on ties.
func (s *Store) FindPositions(q *models.PositionQuery) ([]models.PositionWithFacility, error) {
	results := []models.PositionWithFacility{}

	for _, p := range s.positions {
		if !s.available(p) {
			continue
		}

		facility := s.facilities[p.FacilityID]
		if q.State != "" && facility.State != q.State {
			continue
		}
		if q.Profession != "" && p.Profession != q.Profession {
			continue
		}
		if q.StartDate != nil && p.ShiftDate.Before(*q.StartDate) {
			continue
		}
		if q.EndDate != nil && p.ShiftDate.After(*q.EndDate) {
			continue
		}

		results = append(results, models.PositionWithFacility{
			Position: p,
			Facility: facility.PublicView(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].ShiftDate.Equal(results[j].ShiftDate) {
			return results[i].ShiftDate.Before(results[j].ShiftDate)
		}
		return results[i].StartTime < results[j].StartTime
	})

	return results, nil
}

// GetPositionByID returns a position regardless of availability, with the
// facility detail view. Returns nil when unknown.
func (s *Store) GetPositionByID(id uuid.UUID) (*models.PositionWithFacility, error) {
	for _, p := range s.positions {
		if p.ID != id {
			continue
		}

		facility, ok := s.facilities[p.FacilityID]
		if !ok {
			return nil, nil
		}

		view := facility.PublicView()
		if facility.Phone.Valid {
			view.Phone = &facility.Phone.String
		}
		if facility.Description.Valid {
			view.Description = &facility.Description.String
		}

		return &models.PositionWithFacility{Position: p, Facility: view}, nil
	}

	return nil, nil
}

// Facilities returns the seeded facilities for bulk loading
func (s *Store) Facilities() []models.Facility {
	facilities := make([]models.Facility, 0, len(s.facilities))
	for _, f := range s.facilities {
		facilities = append(facilities, f)
	}
	sort.Slice(facilities, func(i, j int) bool {
		return facilities[i].Name < facilities[j].Name
	})
	return facilities
}

// Positions returns the seeded positions in insertion order
func (s *Store) Positions() []models.Position {
	return append([]models.Position(nil), s.positions...)
}

// ListAvailableStates returns the distinct states with at least one
// available position, sorted ascending.
func (s *Store) ListAvailableStates() ([]string, error) {
	seen := make(map[string]bool)
	for _, p := range s.positions {
		if s.available(p) {
			seen[s.facilities[p.FacilityID].State] = true
		}
	}

	states := make([]string, 0, len(seen))
	for state := range seen {
		states = append(states, state)
	}
	sort.Strings(states)

	return states, nil
}
