package catalog

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
)

// CompanyInfoService reads and upserts the single company profile.
type CompanyInfoService struct {
	store repository.Store[domain.CompanyInfo]
}

func NewCompanyInfoService(store repository.Store[domain.CompanyInfo]) *CompanyInfoService {
	return &CompanyInfoService{store: store}
}

// FindCompanyInfo returns the stored profile, repository.ErrNotFound when none.
func (s *CompanyInfoService) FindCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	return s.store.FindFirst(ctx)
}

// GetCompanyInfo returns the stored profile, or the built-in default when the
// table is empty. The default is never persisted.
func (s *CompanyInfoService) GetCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	info, err := s.store.FindFirst(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		def := domain.DefaultCompanyInfo()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// SaveCompanyInfo overwrites the profile with info as given. Without an id
// the current row is replaced, so the table keeps one logical record. An id
// that matches no row is treated as absent.
func (s *CompanyInfoService) SaveCompanyInfo(ctx context.Context, info *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	if err := clearUnknownID(ctx, s.store, &info.ID); err != nil {
		return nil, err
	}
	if info.ID == 0 {
		current, err := s.store.FindFirst(ctx)
		switch {
		case err == nil:
			info.ID = current.ID
		case !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
	}
	if err := s.store.Save(ctx, info); err != nil {
		return nil, err
	}
	zap.L().Info("company info saved", zap.Int64("id", info.ID), zap.String("name", info.Name))
	return info, nil
}
