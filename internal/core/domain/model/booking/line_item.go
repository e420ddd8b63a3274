package booking

import (
	"fmt"

	"haulaway/internal/pkg/errs"
)

// MaxLineItemQuantity bounds a single line item's quantity.
const MaxLineItemQuantity = 100

// LineItem is one priced row of a booking's item list. Price and volume are
// always the server-side catalog values captured at pricing time; values
// submitted by the client never survive into a LineItem. Verified is false
// when the catalog had no matching row, in which case price and volume are
// forced to zero and the row is kept for operator review.
type LineItem struct {
	Category    string
	Name        string
	DisplayName string
	Quantity    int
	UnitPrice   int
	UnitVolume  float64
	Verified    bool
}

// NewLineItem validates and creates a priced line item.
func NewLineItem(
	category, name, displayName string,
	quantity, unitPrice int,
	unitVolume float64,
	verified bool,
) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 || quantity > MaxLineItemQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineItemQuantity)
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if unitVolume < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitVolume",
			fmt.Errorf("%f is negative", unitVolume))
	}
	if displayName == "" {
		displayName = name
	}

	return LineItem{
		Category:    category,
		Name:        name,
		DisplayName: displayName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		UnitVolume:  unitVolume,
		Verified:    verified,
	}, nil
}

// Subtotal returns quantity × server unit price.
func (li LineItem) Subtotal() int {
	return li.UnitPrice * li.Quantity
}

// LoadingCube returns quantity × server unit volume.
func (li LineItem) LoadingCube() float64 {
	return li.UnitVolume * float64(li.Quantity)
}
