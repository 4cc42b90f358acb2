package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ErrNotFound is returned when a lookup by id (or the first row) finds nothing.
var ErrNotFound = errors.New("record not found")

// Entity is a persisted record with an auto-increment identity key.
type Entity interface {
	schema.Tabler
}

// Store is the data access contract shared by every entity table.
type Store[T Entity] interface {
	// FindAll returns every row ordered by id
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns ErrNotFound when no row has the id
	FindByID(ctx context.Context, id int64) (*T, error)

	// FindFirst returns the row with the lowest id
	FindFirst(ctx context.Context) (*T, error)

	// FindByField returns rows whose column equals value exactly
	FindByField(ctx context.Context, column string, value interface{}) ([]T, error)

	// Save inserts when the id is zero, otherwise overwrites every column
	Save(ctx context.Context, entity *T) error

	// DeleteByID removes the row with the id, absent rows are not an error
	DeleteByID(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)

	Count(ctx context.Context) (int64, error)
}

// GormStore is the GORM implementation of Store
type GormStore[T Entity] struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-based store for the table of T
func NewGormStore[T Entity](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

func (s *GormStore[T]) table() string {
	var zero T
	return zero.TableName()
}

func (s *GormStore[T]) FindAll(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "query %s", s.table())
	}
	return rows, nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query %s id=%d", s.table(), id)
	}
	return &row, nil
}

func (s *GormStore[T]) FindFirst(ctx context.Context) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Order("id ASC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query first %s", s.table())
	}
	return &row, nil
}

func (s *GormStore[T]) FindByField(ctx context.Context, column string, value interface{}) ([]T, error) {
	rows := make([]T, 0)
	err := s.db.WithContext(ctx).
		Where(map[string]interface{}{column: value}).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "query %s by %s", s.table(), column)
	}
	return rows, nil
}

func (s *GormStore[T]) Save(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return errors.Wrapf(err, "save %s", s.table())
	}
	return nil
}

func (s *GormStore[T]) DeleteByID(ctx context.Context, id int64) error {
	var zero T
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error; err != nil {
		return errors.Wrapf(err, "delete %s id=%d", s.table(), id)
	}
	return nil
}

func (s *GormStore[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	var zero T
	if err := s.db.WithContext(ctx).Model(&zero).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "count %s id=%d", s.table(), id)
	}
	return count > 0, nil
}

func (s *GormStore[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var zero T
	if err := s.db.WithContext(ctx).Model(&zero).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "count %s", s.table())
	}
	return count, nil
}
