package repository

import "github.com/souravverma/portfolio-backend/internal/domain/entity"

// PortfolioRepository defines the interface for portfolio item persistence.
type PortfolioRepository interface {
	Create(p *entity.PortfolioItem) error
	// List returns items newest first; activeOnly restricts to isActive=true.
	List(activeOnly bool) ([]*entity.PortfolioItem, error)
	// Update overwrites all mutable fields of the item identified by p.ID and
	// advances UpdatedAt. ErrNotFound when the id does not resolve.
	Update(p *entity.PortfolioItem) error
	Delete(id string) error
	Count() (int64, error)
}
