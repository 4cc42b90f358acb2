package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
)

type ProductService struct {
	store repository.Store[domain.Product]
}

func NewProductService(store repository.Store[domain.Product]) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.store.FindAll(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ProductService) ProductExists(ctx context.Context, id int64) (bool, error) {
	return s.store.ExistsByID(ctx, id)
}

// SaveProduct overwrites an existing product or inserts a new one. An id that
// matches no row is discarded so the database assigns the key.
func (s *ProductService) SaveProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := clearUnknownID(ctx, s.store, &p.ID); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	zap.L().Info("product saved", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	zap.L().Info("product deleted", zap.Int64("id", id))
	return nil
}

// clearUnknownID zeroes *id when no row has it, turning the save into an insert.
func clearUnknownID[T repository.Entity](ctx context.Context, store repository.Store[T], id *int64) error {
	if *id == 0 {
		return nil
	}
	exists, err := store.ExistsByID(ctx, *id)
	if err != nil {
		return err
	}
	if !exists {
		*id = 0
	}
	return nil
}
