// Package product provides the product entity whose prices are captured onto
// order line items at order time.
package product

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a sellable item with a current unit price. Orders copy the
// price into their line items, so changing it here never mutates history.
type Product struct {
	id        kernel.UUID
	name      string
	unitPrice float64

	isConstructed bool
}

// NewProduct creates a validated product. Name must be non-empty and the
// unit price non-negative.
func NewProduct(id kernel.UUID, name string, unitPrice float64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name string, unitPrice float64) (*Product, error) {
	return NewProduct(id, name, unitPrice)
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current unit price.
func (p *Product) UnitPrice() float64 {
	return p.unitPrice
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit_price",
			fmt.Errorf("%f is negative", unitPrice))
	}
	p.unitPrice = unitPrice
	return nil
}
