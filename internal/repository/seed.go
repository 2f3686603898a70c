package repository

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// SeedSampleProducts installs the three fixed sample records the service
// starts with. Ids are explicit so clients can rely on them.
func SeedSampleProducts(repo domain.ProductRepository, logger *logrus.Logger) error {
	samples := []domain.Product{
		{ID: "1", Name: "Laptop", Description: "A powerful laptop", Price: 999.99, Category: "Electronics"},
		{ID: "2", Name: "Mouse", Description: "A wireless mouse", Price: 29.99, Category: "Electronics"},
		{ID: "3", Name: "Keyboard", Description: "A mechanical keyboard", Price: 79.99, Category: "Electronics"},
	}

	for _, sample := range samples {
		if _, err := repo.CreateProduct(&sample); err != nil {
			logger.Errorf("Failed to seed sample product ID %s: %v", sample.ID, err)
			return err
		}
	}

	logger.Infof("Seeded %d sample products", len(samples))
	return nil
}
