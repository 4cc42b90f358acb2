package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
)

// TableCounts returns the number of rows in each entity table
func (a *Application) TableCounts(ctx context.Context) (map[string]int64, error) {
	return tableCounts(ctx, a.gormDB)
}

func tableCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64, 3)
	var err error
	if counts[domain.CompanyInfo{}.TableName()], err = repository.NewGormStore[domain.CompanyInfo](db).Count(ctx); err != nil {
		return nil, err
	}
	if counts[domain.Product{}.TableName()], err = repository.NewGormStore[domain.Product](db).Count(ctx); err != nil {
		return nil, err
	}
	if counts[domain.Service{}.TableName()], err = repository.NewGormStore[domain.Service](db).Count(ctx); err != nil {
		return nil, err
	}
	return counts, nil
}

// SeedCatalog inserts the sample company profile, products and services
// when all three tables are empty. It reports whether anything was written;
// a store with any row is left untouched.
func (a *Application) SeedCatalog(ctx context.Context) (bool, error) {
	seeded := false
	err := a.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counts, err := tableCounts(ctx, tx)
		if err != nil {
			return err
		}
		for table, n := range counts {
			if n > 0 {
				zap.L().Info("catalog already initialized, skip seeding",
					zap.String("table", table), zap.Int64("rows", n))
				return nil
			}
		}

		info := seedCompanyInfo
		if err := repository.NewGormStore[domain.CompanyInfo](tx).Save(ctx, &info); err != nil {
			return errors.Wrap(err, "seed company info")
		}

		products := repository.NewGormStore[domain.Product](tx)
		for _, p := range seedProducts {
			p := p
			if err := products.Save(ctx, &p); err != nil {
				return errors.Wrapf(err, "seed product %s", p.Name)
			}
			zap.L().Info("initialized default product", zap.String("name", p.Name))
		}

		services := repository.NewGormStore[domain.Service](tx)
		for _, s := range seedServices {
			s := s
			if err := services.Save(ctx, &s); err != nil {
				return errors.Wrapf(err, "seed service %s", s.Name)
			}
			zap.L().Info("initialized default service",
				zap.String("name", s.Name), zap.String("category", s.Category))
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
