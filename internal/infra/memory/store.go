// Package memory holds map-backed repositories with the same contracts as
// the gorm ones. The server uses them with --in-memory; tests use them as
// fakes.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	landdomain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	locationdomain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	userdomain "github.com/BruksfildServices01/land-broker/internal/domain/user"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type storedLand struct {
	land models.Land
	seq  int64
}

type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	seq int64

	users     map[string]models.User
	locations map[string]models.Location
	lands     map[string]storedLand
	audit     []models.AuditLog

	// Err, when set, is returned by every call. Tests use it to simulate
	// an unavailable store.
	Err error
}

func NewStore() *Store {
	return &Store{
		now:       time.Now,
		users:     map[string]models.User{},
		locations: map[string]models.Location{},
		lands:     map[string]storedLand{},
	}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}

	u, ok := s.users[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &u, nil
}

func (s *Store) UpsertUser(ctx context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}

	for _, existing := range s.users {
		if existing.Email == u.Email {
			s.mu.Unlock()
			return &existing, nil
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	s.mu.Unlock()

	return s.GetUserByID(ctx, u.ID)
}

// --------------------------------------------------
// Locations
// --------------------------------------------------

func (s *Store) SearchLocations(_ context.Context, query string) ([]models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}

	q := strings.ToLower(query)
	out := []models.Location{}
	for _, loc := range s.locations {
		if q == "" || strings.Contains(strings.ToLower(loc.Name), q) {
			out = append(out, loc)
		}
	}
	slices.SortFunc(out, func(a, b models.Location) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *Store) CreateLocation(_ context.Context, loc *models.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	return s.insertLocation(loc)
}

func (s *Store) insertLocation(loc *models.Location) error {
	for _, existing := range s.locations {
		if existing.Name == loc.Name {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}
	}
	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	now := s.now()
	loc.CreatedAt, loc.UpdatedAt = now, now
	s.locations[loc.ID] = *loc
	return nil
}

func (s *Store) GetLocation(_ context.Context, id string) (*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}

	loc, ok := s.locations[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &loc, nil
}

func (s *Store) FindOrCreateLocation(_ context.Context, name string) (*models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, existing := range s.locations {
		if existing.Name == name {
			return &existing, nil
		}
	}
	loc := models.Location{Name: name}
	if err := s.insertLocation(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// --------------------------------------------------
// Lands
// --------------------------------------------------

func (s *Store) withRelations(l models.Land) models.Land {
	l.Location = s.locations[l.LocationID]
	l.Owner = models.NewOwner(s.users[l.UserID])
	return l
}

func matches(l models.Land, f landdomain.Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.FullName), q) &&
			!strings.Contains(strings.ToLower(l.Location.Name), q) &&
			!strings.Contains(l.MobileNo, f.Search) {
			return false
		}
	}
	if f.Location != "" && !strings.EqualFold(l.Location.Name, f.Location) {
		return false
	}
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	return true
}

func (s *Store) ListLands(_ context.Context, ownerID string, f landdomain.Filter) ([]models.Land, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, 0, s.Err
	}

	var hits []storedLand
	for _, sl := range s.lands {
		if sl.land.UserID != ownerID {
			continue
		}
		l := s.withRelations(sl.land)
		if matches(l, f) {
			hits = append(hits, storedLand{land: l, seq: sl.seq})
		}
	}

	slices.SortFunc(hits, func(a, b storedLand) int {
		if c := b.land.CreatedAt.Compare(a.land.CreatedAt); c != 0 {
			return c
		}
		return int(b.seq - a.seq)
	})

	total := int64(len(hits))
	out := []models.Land{}
	for i := f.Offset(); i < len(hits) && len(out) < f.Limit; i++ {
		out = append(out, hits[i].land)
	}
	return out, total, nil
}

func (s *Store) GetLandForOwner(_ context.Context, landID, ownerID string) (*models.Land, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}

	sl, ok := s.lands[landID]
	if !ok || sl.land.UserID != ownerID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	l := s.withRelations(sl.land)
	return &l, nil
}

func (s *Store) CreateLand(_ context.Context, l *models.Land) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.locations[l.LocationID]; !ok {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := s.now()
	l.CreatedAt, l.UpdatedAt = now, now

	s.seq++
	stored := *l
	stored.Location = models.Location{}
	stored.Owner = nil
	s.lands[l.ID] = storedLand{land: stored, seq: s.seq}
	return nil
}

func (s *Store) UpdateLandForOwner(_ context.Context, l *models.Land) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	sl, ok := s.lands[l.ID]
	if !ok || sl.land.UserID != l.UserID {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if _, ok := s.locations[l.LocationID]; !ok {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	cur := sl.land
	cur.FullName = l.FullName
	cur.MobileNo = l.MobileNo
	cur.LocationID = l.LocationID
	cur.LandArea = l.LandArea
	cur.LandAreaUnit = l.LandAreaUnit
	cur.Type = l.Type
	cur.TotalPrice = l.TotalPrice
	cur.PricePerArea = l.PricePerArea
	cur.UpdatedAt = l.UpdatedAt
	s.lands[l.ID] = storedLand{land: cur, seq: sl.seq}
	return nil
}

func (s *Store) DeleteLandForOwner(_ context.Context, landID, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	sl, ok := s.lands[landID]
	if !ok || sl.land.UserID != ownerID {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(s.lands, landID)
	return nil
}

var (
	_ userdomain.Repository     = (*Store)(nil)
	_ locationdomain.Repository = (*Store)(nil)
	_ landdomain.Repository     = (*Store)(nil)
)

// Ping reports Err, so tests can simulate an unreachable store.
func (s *Store) Ping(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Err
}
