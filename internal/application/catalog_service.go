package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
)

// CatalogService manages the service offerings shown on the site.
type CatalogService struct {
	Repo   repo.ServiceRepository
	Logger *logrus.Logger
}

func NewCatalogService(r repo.ServiceRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repo: r, Logger: logger}
}

func (s *CatalogService) ListPublic(ctx context.Context) ([]*entity.Service, error) {
	return s.Repo.List(true)
}

func (s *CatalogService) ListAll(ctx context.Context) ([]*entity.Service, error) {
	return s.Repo.List(false)
}

func (s *CatalogService) Create(ctx context.Context, svc *entity.Service) error {
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if err := s.Repo.Create(svc); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("id", svc.ID).Info("service created")
	}
	return nil
}

// Update replaces the stored offering with the given one in full.
func (s *CatalogService) Update(ctx context.Context, svc *entity.Service) error {
	if svc.Features == nil {
		svc.Features = []string{}
	}
	return s.Repo.Update(svc)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}
