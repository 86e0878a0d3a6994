package audit

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/land-broker/internal/models"
)

const (
	DefaultQueryLimit = 50
	MaxQueryLimit     = 200
)

// Query selects one user's events. Page is one based; From and To are
// inclusive days when set.
type Query struct {
	UserID string
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxQueryLimit {
		q.Limit = DefaultQueryLimit
	}
	// (Page-1)*Limit must fit in an int.
	if q.Page-1 > math.MaxInt/q.Limit {
		q.Page = math.MaxInt/q.Limit + 1
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Reader lists stored events, newest first.
type Reader interface {
	List(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}

// --------------------------------------------------
// gorm
// --------------------------------------------------

func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q = q.Normalize()

	base := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", q.UserID)

	if q.Action != "" {
		base = base.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		base = base.Where("entity = ?", q.Entity)
	}
	if !q.From.IsZero() {
		base = base.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		base = base.Where("created_at < ?", q.To.Add(24*time.Hour))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := []models.AuditLog{}
	if err := base.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

var _ Reader = (*Logger)(nil)
