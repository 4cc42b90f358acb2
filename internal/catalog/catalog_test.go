package catalog

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
	"github.com/aadhya/eduverse/internal/storetest"
)

type MockCompanyStore struct {
	mock.Mock
	repository.Store[domain.CompanyInfo]
}

func (m *MockCompanyStore) FindFirst(ctx context.Context) (*domain.CompanyInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*domain.CompanyInfo)
	return info, args.Error(1)
}

func TestCompanyInfoService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the default profile on an empty store", func(t *testing.T) {
		svc := NewCompanyInfoService(repository.NewGormStore[domain.CompanyInfo](storetest.NewDB(t)))

		info, err := svc.GetCompanyInfo(ctx)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "Aadhya Eduverse", info.Name)
		assert.Equal(t, "aadhyaeduverse@divyaam.net", info.Email)
		assert.Zero(t, info.ID)

		_, err = svc.FindCompanyInfo(ctx)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Should return the first inserted record", func(t *testing.T) {
		db := storetest.NewDB(t)
		store := repository.NewGormStore[domain.CompanyInfo](db)
		require.NoError(t, store.Save(ctx, &domain.CompanyInfo{Name: "First Ltd"}))
		require.NoError(t, store.Save(ctx, &domain.CompanyInfo{Name: "Second Ltd"}))

		info, err := NewCompanyInfoService(store).GetCompanyInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, "First Ltd", info.Name)
	})

	t.Run("Should upsert onto the current record when id is absent", func(t *testing.T) {
		store := repository.NewGormStore[domain.CompanyInfo](storetest.NewDB(t))
		svc := NewCompanyInfoService(store)

		created, err := svc.SaveCompanyInfo(ctx, &domain.CompanyInfo{Name: "Aadhya", Phone: "+91 1"})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		updated, err := svc.SaveCompanyInfo(ctx, &domain.CompanyInfo{Name: "Aadhya Eduverse Pvt Ltd"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		info, err := svc.GetCompanyInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Aadhya Eduverse Pvt Ltd", info.Name)
		assert.Empty(t, info.Phone)
	})

	t.Run("Should treat an unknown id as the current record", func(t *testing.T) {
		store := repository.NewGormStore[domain.CompanyInfo](storetest.NewDB(t))
		svc := NewCompanyInfoService(store)

		created, err := svc.SaveCompanyInfo(ctx, &domain.CompanyInfo{Name: "Aadhya"})
		require.NoError(t, err)

		saved, err := svc.SaveCompanyInfo(ctx, &domain.CompanyInfo{ID: 4242, Name: "Aadhya Eduverse"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, saved.ID)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("Should propagate store failures", func(t *testing.T) {
		store := &MockCompanyStore{}
		store.On("FindFirst", mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := NewCompanyInfoService(store).GetCompanyInfo(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		store.AssertExpectations(t)
	})
}

func TestServiceCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := NewServiceCatalog(repository.NewGormStore[domain.Service](storetest.NewDB(t)))

	for _, s := range []*domain.Service{
		{Name: "Java Programming Training", Category: domain.CategoryTraining},
		{Name: "Custom Website Development", Category: domain.CategoryDevelopment},
		{Name: "Python for Data Science", Category: domain.CategoryTraining},
	} {
		_, err := catalog.SaveService(ctx, s)
		require.NoError(t, err)
	}

	t.Run("Should return an empty slice for unknown categories", func(t *testing.T) {
		for _, category := range []string{"Marketing", "", "training", "Competitive Exam"} {
			rows, err := catalog.ListServicesByCategory(ctx, category)
			require.NoError(t, err, category)
			assert.NotNil(t, rows, category)
			assert.Empty(t, rows, category)
		}
	})

	t.Run("Should filter by exact category", func(t *testing.T) {
		rows, err := catalog.ListServicesByCategory(ctx, domain.CategoryTraining)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("Should keep every requested bucket", func(t *testing.T) {
		groups, err := catalog.GroupByCategory(ctx, domain.HomeCategories...)
		require.NoError(t, err)
		require.Len(t, groups, 3)
		assert.Len(t, groups[domain.CategoryTraining], 2)
		assert.Len(t, groups[domain.CategoryDevelopment], 1)
		assert.NotNil(t, groups[domain.CategoryCompetitiveExam])
		assert.Empty(t, groups[domain.CategoryCompetitiveExam])
	})

	t.Run("Should delete by id", func(t *testing.T) {
		all, err := catalog.ListServices(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)

		require.NoError(t, catalog.DeleteService(ctx, all[0].ID))
		ok, err := catalog.ServiceExists(ctx, all[0].ID)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = catalog.GetService(ctx, all[0].ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestProductService(t *testing.T) {
	ctx := context.Background()
	products := NewProductService(repository.NewGormStore[domain.Product](storetest.NewDB(t)))

	saved, err := products.SaveProduct(ctx, &domain.Product{
		Name:        "Explainable AI Platform",
		Description: "transparent AI",
		ImageUrl:    "/images/products/explainable-ai.jpg",
	})
	require.NoError(t, err)

	t.Run("Should round trip a full overwrite", func(t *testing.T) {
		_, err := products.SaveProduct(ctx, &domain.Product{ID: saved.ID, Name: "XAI Platform"})
		require.NoError(t, err)

		got, err := products.GetProduct(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.Product{ID: saved.ID, Name: "XAI Platform"}, *got)
	})

	t.Run("Should assign a fresh id when the given one does not exist", func(t *testing.T) {
		p, err := products.SaveProduct(ctx, &domain.Product{ID: 4242, Name: "Ghost"})
		require.NoError(t, err)
		assert.NotEqual(t, int64(4242), p.ID)

		ok, err := products.ProductExists(ctx, 4242)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, products.DeleteProduct(ctx, p.ID))
	})

	t.Run("Should list and delete", func(t *testing.T) {
		rows, err := products.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		require.NoError(t, products.DeleteProduct(ctx, saved.ID))
		ok, err := products.ProductExists(ctx, saved.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
