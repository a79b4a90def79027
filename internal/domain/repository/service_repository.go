package repository

import "github.com/souravverma/portfolio-backend/internal/domain/entity"

// ServiceRepository defines the interface for service listing persistence.
type ServiceRepository interface {
	Create(s *entity.Service) error
	List(activeOnly bool) ([]*entity.Service, error)
	Update(s *entity.Service) error
	Delete(id string) error
	Count() (int64, error)
}
