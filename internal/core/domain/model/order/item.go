package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Item is a line item captured on an order. The unit price is frozen at order
// time so later product price changes never affect an existing order.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice float64

	isConstructed bool
}

// NewItem creates a validated line item.
// Quantity must be positive and unit price non-negative.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit_price",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return Item{
		productID:     productID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price captured at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}
