package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
)

// PortfolioService manages the portfolio collection. The public site sees
// only active items; admin endpoints see everything.
type PortfolioService struct {
	Repo   repo.PortfolioRepository
	Logger *logrus.Logger
}

func NewPortfolioService(r repo.PortfolioRepository, logger *logrus.Logger) *PortfolioService {
	return &PortfolioService{Repo: r, Logger: logger}
}

func (s *PortfolioService) ListPublic(ctx context.Context) ([]*entity.PortfolioItem, error) {
	return s.Repo.List(true)
}

func (s *PortfolioService) ListAll(ctx context.Context) ([]*entity.PortfolioItem, error) {
	return s.Repo.List(false)
}

func (s *PortfolioService) Create(ctx context.Context, item *entity.PortfolioItem) error {
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if err := s.Repo.Create(item); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("id", item.ID).Info("portfolio item created")
	}
	return nil
}

// Update replaces the stored item with the given one in full.
func (s *PortfolioService) Update(ctx context.Context, item *entity.PortfolioItem) error {
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return s.Repo.Update(item)
}

func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}
