package dto

import (
	"github.com/BruksfildServices01/land-broker/internal/auth"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type LoginDTO struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type VerifyDTO struct {
	Success bool          `json:"success"`
	User    auth.Identity `json:"user"`
	Message string        `json:"message"`
}
