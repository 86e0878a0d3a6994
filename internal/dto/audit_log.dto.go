package dto

import "github.com/BruksfildServices01/land-broker/internal/models"

type AuditLogListDTO struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}
