package repository

import (
	"time"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
)

// AdminRepository defines the interface for admin account persistence.
type AdminRepository interface {
	Create(a *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	GetByUsername(username string) (*entity.Admin, error)
	TouchLastLogin(id string, at time.Time) error
}
