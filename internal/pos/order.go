package pos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errors returned by Order operations.
var (
	ErrInvalidItem     = errors.New("invalid item: only Drink, Food or IceStorm can be ordered")
	ErrIndexOutOfRange = errors.New("invalid index: no item removed")
)

// EmptyOrderReceipt is the exact receipt text for an order with no items.
// Consumers parse this string; do not change it.
const EmptyOrderReceipt = "Order is empty. Add some items!"

// DrinkPrice is the flat price charged for every drink on an order,
// regardless of base or flavors. All drinks cost the same; the price is
// order-level menu policy rather than an attribute of Drink.
var DrinkPrice = money("5.00")

// Item is a purchasable order entry. It is implemented only by Drink,
// Food and IceStorm; the unexported methods keep the set closed.
type Item interface {
	// cost is the amount this entry contributes to the order total.
	cost() decimal.Decimal
	// entry is the single- or multi-line receipt text for this entry.
	entry() string
	sealed()
}

// Order is the mutable aggregate of items for a single transaction. It
// owns its entries by reference: toppings added to an item after it was
// placed on the order are reflected in later totals and receipts.
//
// An Order is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Order struct {
	items []Item
}

// NewOrder creates an empty order.
func NewOrder() *Order {
	return &Order{}
}

// Add appends an item to the end of the order, preserving insertion order.
func (o *Order) Add(item Item) error {
	if item == nil {
		return ErrInvalidItem
	}
	o.items = append(o.items, item)
	return nil
}

// Remove deletes the item at the given zero-based position, shifting later
// entries left. Fails if the index is negative or past the end.
func (o *Order) Remove(index int) error {
	if index < 0 || index >= len(o.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	o.items = append(o.items[:index], o.items[index+1:]...)
	return nil
}

// Items returns the current entries in insertion order.
func (o *Order) Items() []Item {
	return o.items
}

// NumItems returns the number of entries on the order.
func (o *Order) NumItems() int {
	return len(o.items)
}

// Total sums the order: the flat DrinkPrice for every drink plus the
// computed price of every food and dessert. Recomputed on every call so
// it always reflects current item state.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.cost())
	}
	return total
}

// Receipt renders the order. An empty order yields EmptyOrderReceipt;
// otherwise a header, one numbered entry per item, and item-count and
// total-cost summary lines, all prices to two decimals.
func (o *Order) Receipt() string {
	if len(o.items) == 0 {
		return EmptyOrderReceipt
	}

	lines := []string{"--- Order Receipt ---"}
	for i, item := range o.items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item.entry()))
	}
	lines = append(lines, fmt.Sprintf("Total Items: %d", len(o.items)))
	lines = append(lines, fmt.Sprintf("Total Cost: $%s", o.Total().StringFixed(2)))
	return strings.Join(lines, "\n")
}

// --- Order entry behavior per item type ---

func (d *Drink) cost() decimal.Decimal {
	return DrinkPrice
}

func (d *Drink) entry() string {
	base := d.base
	if base == "" {
		base = "None"
	}
	flavors := strings.Join(d.Flavors(), ", ")
	if flavors == "" {
		flavors = "None"
	}
	return fmt.Sprintf("Drink - Base: %s, Flavors: %s", base, flavors)
}

func (f *Food) cost() decimal.Decimal {
	return f.Price()
}

func (f *Food) entry() string {
	return f.Receipt()
}

func (s *IceStorm) cost() decimal.Decimal {
	return s.Price()
}

func (s *IceStorm) entry() string {
	return s.Receipt()
}
