package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/land-broker/internal/models"
)

// Logger is the gorm-backed Sink.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   optional(ev.UserID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ Sink = (*Logger)(nil)
