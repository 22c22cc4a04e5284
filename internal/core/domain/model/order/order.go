package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a customer order. It carries the monetary
// amount, the captured line items, and the current lifecycle state.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Amount must be non-negative
//   - State is always one of the recognized State values
//   - State changes only through MoveTo with a graph-validated target
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	amount     float64
	state      State
	notes      string
	items      []Item
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the Pending state.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: identifier of the owning customer
//   - amount: total order amount, must be non-negative
//   - items: captured line items (each already validated by NewItem)
//   - notes: optional free-form notes
//
// Returns a validation error if any parameter violates an invariant.
func NewOrder(id, customerID kernel.UUID, amount float64, items []Item, notes string) (*Order, error) {
	o := &Order{
		state:         Pending,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAmount(amount),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-deriving the
// initial state. Repositories pass whatever the database row holds and this
// function rejects corrupt rows.
func RestoreOrder(
	id, customerID kernel.UUID,
	amount float64,
	state State,
	items []Item,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAmount(amount),
		o.setItems(items),
		o.setState(state),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Amount returns the total order amount.
func (o *Order) Amount() float64 {
	return o.amount
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// Notes returns the optional free-form notes attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the captured line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// MoveTo sets the order state to next. The caller is responsible for having
// validated the transition against the Graph; MoveTo only rejects states that
// are not part of the recognized set.
func (o *Order) MoveTo(next State) error {
	if err := next.Validate(); err != nil {
		return err
	}
	o.state = next
	return nil
}

// Facts exposes the order as a nested fact map for rule evaluation.
// Dotted rule fields such as "customer.id" traverse the nested maps; line
// items appear under "items" with their captured unit prices.
func (o *Order) Facts() map[string]any {
	items := make([]any, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, map[string]any{
			"product_id": item.ProductID().String(),
			"name":       item.Name(),
			"quantity":   item.Quantity(),
			"unit_price": item.UnitPrice(),
		})
	}

	return map[string]any{
		"id":            o.id.String(),
		"amount":        o.amount,
		"current_state": o.state.String(),
		"notes":         o.notes,
		"customer": map[string]any{
			"id": o.customerID.String(),
		},
		"items": items,
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}
	o.amount = amount
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}
