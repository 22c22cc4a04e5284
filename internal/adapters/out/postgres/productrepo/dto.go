// Package productrepo persists catalog products.
package productrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	UnitPrice float64
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		UnitPrice: aggregate.UnitPrice(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.UnitPrice)
}
