package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
)

// ServiceCatalog manages the offered services and their category lookup.
type ServiceCatalog struct {
	store repository.Store[domain.Service]
}

func NewServiceCatalog(store repository.Store[domain.Service]) *ServiceCatalog {
	return &ServiceCatalog{store: store}
}

func (s *ServiceCatalog) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.store.FindAll(ctx)
}

// ListServicesByCategory matches the category exactly. An unknown category
// yields an empty slice.
func (s *ServiceCatalog) ListServicesByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	return s.store.FindByField(ctx, "category", category)
}

// GroupByCategory returns one entry per requested category, empty ones included.
func (s *ServiceCatalog) GroupByCategory(ctx context.Context, categories ...string) (map[string][]domain.Service, error) {
	groups := make(map[string][]domain.Service, len(categories))
	for _, category := range categories {
		rows, err := s.ListServicesByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		groups[category] = rows
	}
	return groups, nil
}

func (s *ServiceCatalog) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ServiceCatalog) ServiceExists(ctx context.Context, id int64) (bool, error) {
	return s.store.ExistsByID(ctx, id)
}

func (s *ServiceCatalog) SaveService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := clearUnknownID(ctx, s.store, &svc.ID); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, svc); err != nil {
		return nil, err
	}
	zap.L().Info("service saved",
		zap.Int64("id", svc.ID),
		zap.String("name", svc.Name),
		zap.String("category", svc.Category))
	return svc, nil
}

func (s *ServiceCatalog) DeleteService(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	zap.L().Info("service deleted", zap.Int64("id", id))
	return nil
}
