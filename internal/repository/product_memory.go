package repository

import (
	"strings"
	"sync"

	"catalog_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// NewUUIDGenerator returns the production id generator.
func NewUUIDGenerator() domain.IDGenerator {
	return uuidGenerator{}
}

// memoryProductRepository keeps products in a map keyed by id plus an
// order slice so listings preserve insertion order. A single RWMutex
// guards both; every operation, including its find-then-mutate sequence,
// runs under it.
type memoryProductRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Product
	order []string
	idGen domain.IDGenerator
	log   *logrus.Logger
}

func NewMemoryProductRepository(idGen domain.IDGenerator, logger *logrus.Logger) domain.ProductRepository {
	return &memoryProductRepository{
		byID:  make(map[string]*domain.Product),
		idGen: idGen,
		log:   logger,
	}
}

func (r *memoryProductRepository) ListProducts() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// snapshot copies the collection in insertion order. Callers must hold
// at least a read lock.
func (r *memoryProductRepository) snapshot() []domain.Product {
	products := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, *r.byID[id])
	}
	return products
}

func (r *memoryProductRepository) GetProductByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[id]
	if !ok {
		r.log.Warnf("Product with ID %s not found", id)
		return nil, domain.ErrProductNotFound
	}
	found := *product
	return &found, nil
}

func (r *memoryProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		id := r.idGen.NewID()
		for r.byID[id] != nil {
			id = r.idGen.NewID()
		}
		product.ID = id
	} else if r.byID[product.ID] != nil {
		r.log.Warnf("Attempted to create product with duplicate ID: %s", product.ID)
		return nil, domain.ErrProductAlreadyExists
	}

	stored := *product
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	r.log.Infof("Product created successfully with ID: %s, Name: %s", stored.ID, stored.Name)
	created := stored
	return &created, nil
}

func (r *memoryProductRepository) ReplaceProduct(id string, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok {
		r.log.Warnf("Product with ID %s not found for replace", id)
		return nil, domain.ErrProductNotFound
	}

	// The id of the stored record never changes on replace.
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category

	r.log.Infof("Product replaced successfully: ID %s", id)
	updated := *existing
	return &updated, nil
}

func (r *memoryProductRepository) MergeProduct(id string, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok {
		r.log.Warnf("Product with ID %s not found for merge", id)
		return nil, domain.ErrProductNotFound
	}

	*existing = domain.ApplyPatch(*existing, patch)

	r.log.Infof("Product merged successfully: ID %s", id)
	updated := *existing
	return &updated, nil
}

func (r *memoryProductRepository) DeleteProduct(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		r.log.Warnf("Product with ID %s not found for delete", id)
		return domain.ErrProductNotFound
	}

	delete(r.byID, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.log.Infof("Product deleted successfully: ID %s", id)
	return nil
}

func (r *memoryProductRepository) SearchProductsByCategory(category string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if category == "" {
		return r.snapshot()
	}

	matches := make([]domain.Product, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.byID[id].Category, category) {
			matches = append(matches, *r.byID[id])
		}
	}
	return matches
}
