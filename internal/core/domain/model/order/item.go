package order

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Item is one line of an order's item manifest: a laundry item type and how
// many pieces of it the order contains. The manifest is assigned by the admin
// together with pricing and is the reference every station's workers count
// against.
type Item struct {
	laundryItemID kernel.UUID
	quantity      int
}

// NewItem creates a manifest line. Quantity must be positive.
func NewItem(laundryItemID kernel.UUID, quantity int) (Item, error) {
	if err := laundryItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidError("quantity")
	}
	return Item{laundryItemID: laundryItemID, quantity: quantity}, nil
}

// LaundryItemID returns the item type identifier.
func (i Item) LaundryItemID() kernel.UUID { return i.laundryItemID }

// Quantity returns the piece count.
func (i Item) Quantity() int { return i.quantity }

// NewItems builds a manifest from parallel id/quantity values, failing on the
// first invalid line or on an empty manifest.
func NewItems(lines map[kernel.UUID]int) ([]Item, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]Item, 0, len(lines))
	var errList []error
	for id, qty := range lines {
		item, err := NewItem(id, qty)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}

	return items, nil
}
