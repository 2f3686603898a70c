package domain

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameRequired  = errors.New("product name cannot be empty")
	ErrProductAlreadyExists = errors.New("product with this id already exists")
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// ProductPatch is a sparse overlay over Product. A nil field (the key was
// absent from the request, or explicitly null) leaves the target field
// unchanged; a non-nil field overwrites it, even when the decoded value
// is an empty string or zero.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// ApplyPatch returns a copy of existing with every present patch field
// overwritten. The id is never part of the patch.
func ApplyPatch(existing Product, patch ProductPatch) Product {
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Category != nil {
		existing.Category = *patch.Category
	}
	return existing
}

type ProductRepository interface {
	ListProducts() []Product
	GetProductByID(id string) (*Product, error)
	CreateProduct(product *Product) (*Product, error)
	ReplaceProduct(id string, product *Product) (*Product, error)
	MergeProduct(id string, patch ProductPatch) (*Product, error)
	DeleteProduct(id string) error
	SearchProductsByCategory(category string) []Product
}

// IDGenerator supplies ids for products created without one. Tests
// substitute a deterministic implementation.
type IDGenerator interface {
	NewID() string
}
