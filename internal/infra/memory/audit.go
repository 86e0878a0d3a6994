package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

func (s *Store) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	row := models.AuditLog{
		ID:        uuid.NewString(),
		Action:    ev.Action,
		Entity:    ev.Entity,
		CreatedAt: s.now(),
	}
	if ev.UserID != "" {
		row.UserID = &ev.UserID
	}
	if ev.EntityID != "" {
		row.EntityID = &ev.EntityID
	}
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			row.Metadata = string(b)
		}
	}

	s.audit = append(s.audit, row)
	return nil
}

func (s *Store) List(_ context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, 0, s.Err
	}
	q = q.Normalize()

	var hits []models.AuditLog
	// Appended in time order, so walk backwards for newest first.
	for i := len(s.audit) - 1; i >= 0; i-- {
		row := s.audit[i]
		if row.UserID == nil || *row.UserID != q.UserID {
			continue
		}
		if q.Action != "" && row.Action != q.Action {
			continue
		}
		if q.Entity != "" && row.Entity != q.Entity {
			continue
		}
		if !q.From.IsZero() && row.CreatedAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !row.CreatedAt.Before(q.To.Add(24*time.Hour)) {
			continue
		}
		hits = append(hits, row)
	}

	out := []models.AuditLog{}
	for i := q.Offset(); i < len(hits) && len(out) < q.Limit; i++ {
		out = append(out, hits[i])
	}
	return out, int64(len(hits)), nil
}

var (
	_ audit.Sink   = (*Store)(nil)
	_ audit.Reader = (*Store)(nil)
)
