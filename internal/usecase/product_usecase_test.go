package usecase

import (
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/require"
)

// mockProductRepository records calls so tests can assert the use case
// short-circuits validation failures before reaching storage.
type mockProductRepository struct {
	products map[string]*domain.Product
	calls    []string
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[string]*domain.Product)}
}

func (m *mockProductRepository) ListProducts() []domain.Product {
	m.calls = append(m.calls, "ListProducts")
	products := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, *p)
	}
	return products
}

func (m *mockProductRepository) GetProductByID(id string) (*domain.Product, error) {
	m.calls = append(m.calls, "GetProductByID")
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	found := *p
	return &found, nil
}

func (m *mockProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	m.calls = append(m.calls, "CreateProduct")
	if product.ID == "" {
		product.ID = "mock-id"
	}
	stored := *product
	m.products[stored.ID] = &stored
	return &stored, nil
}

func (m *mockProductRepository) ReplaceProduct(id string, product *domain.Product) (*domain.Product, error) {
	m.calls = append(m.calls, "ReplaceProduct")
	existing, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category
	updated := *existing
	return &updated, nil
}

func (m *mockProductRepository) MergeProduct(id string, patch domain.ProductPatch) (*domain.Product, error) {
	m.calls = append(m.calls, "MergeProduct")
	existing, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	*existing = domain.ApplyPatch(*existing, patch)
	updated := *existing
	return &updated, nil
}

func (m *mockProductRepository) DeleteProduct(id string) error {
	m.calls = append(m.calls, "DeleteProduct")
	if _, ok := m.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) SearchProductsByCategory(category string) []domain.Product {
	m.calls = append(m.calls, "SearchProductsByCategory")
	return m.ListProducts()
}

func TestProductUseCase(t *testing.T) {
	t.Run("CreateProduct_FailsOnEmptyNameWithoutTouchingRepo", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUseCase(repo, testLogger())

		_, err := uc.CreateProduct(&domain.Product{Price: 10})
		require.ErrorIs(t, err, domain.ErrProductNameRequired)
		require.Empty(t, repo.calls)
	})

	t.Run("CreateProduct_StoresValidProduct", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUseCase(repo, testLogger())

		created, err := uc.CreateProduct(&domain.Product{Name: "Webcam", Price: 59.99})
		require.NoError(t, err)
		require.Equal(t, "mock-id", created.ID)
		require.Equal(t, "Webcam", created.Name)
	})

	t.Run("ReplaceProduct_FailsOnEmptyNameWithoutTouchingRepo", func(t *testing.T) {
		repo := newMockProductRepository()
		repo.products["1"] = &domain.Product{ID: "1", Name: "Laptop"}
		uc := NewProductUseCase(repo, testLogger())

		_, err := uc.ReplaceProduct("1", &domain.Product{Name: ""})
		require.ErrorIs(t, err, domain.ErrProductNameRequired)
		require.Empty(t, repo.calls)
	})

	t.Run("ReplaceProduct_NotFoundPassesThrough", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUseCase(repo, testLogger())

		_, err := uc.ReplaceProduct("missing", &domain.Product{Name: "Anything"})
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("MergeProduct_AllowsExplicitlyEmptyName", func(t *testing.T) {
		// Replace rejects an empty name but Merge applies one when the
		// patch carries it explicitly. The asymmetry is intentional and
		// mirrors the reference behavior.
		repo := newMockProductRepository()
		repo.products["1"] = &domain.Product{ID: "1", Name: "Laptop", Category: "Electronics"}
		uc := NewProductUseCase(repo, testLogger())

		empty := ""
		updated, err := uc.MergeProduct("1", domain.ProductPatch{Name: &empty})
		require.NoError(t, err)
		require.Empty(t, updated.Name)
		require.Equal(t, "Electronics", updated.Category)
	})

	t.Run("MergeProduct_NotFoundPassesThrough", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUseCase(repo, testLogger())

		_, err := uc.MergeProduct("missing", domain.ProductPatch{})
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("DeleteProduct_PassesThroughNotFound", func(t *testing.T) {
		repo := newMockProductRepository()
		uc := NewProductUseCase(repo, testLogger())

		err := uc.DeleteProduct("missing")
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
