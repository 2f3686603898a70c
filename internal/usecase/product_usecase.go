package usecase

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListProducts() []domain.Product
	GetProductByID(id string) (*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	ReplaceProduct(id string, product *domain.Product) (*domain.Product, error)
	MergeProduct(id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(id string) error
	SearchProductsByCategory(category string) []domain.Product
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) ListProducts() []domain.Product {
	products := uc.productRepo.ListProducts()
	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products
}

func (uc *productUseCase) GetProductByID(id string) (*domain.Product, error) {
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		uc.log.Warn("Use Case: Attempted to create product with empty name")
		return nil, domain.ErrProductNameRequired
	}

	created, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) ReplaceProduct(id string, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		uc.log.Warnf("Use Case: Attempted to replace product ID %s with empty name", id)
		return nil, domain.ErrProductNameRequired
	}

	updated, err := uc.productRepo.ReplaceProduct(id, product)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to replace product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product replaced successfully for ID %s", id)
	return updated, nil
}

// MergeProduct deliberately skips name validation: a patch carrying an
// explicitly empty name is applied as-is, unlike ReplaceProduct.
func (uc *productUseCase) MergeProduct(id string, patch domain.ProductPatch) (*domain.Product, error) {
	updated, err := uc.productRepo.MergeProduct(id, patch)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to merge product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product merged successfully for ID %s", id)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(id string) error {
	if err := uc.productRepo.DeleteProduct(id); err != nil {
		uc.log.Warnf("Use Case: Failed to delete product ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %s", id)
	return nil
}

func (uc *productUseCase) SearchProductsByCategory(category string) []domain.Product {
	products := uc.productRepo.SearchProductsByCategory(category)
	uc.log.Infof("Use Case: Retrieved %d products for category %q", len(products), category)
	return products
}
