package pos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errors returned by Food and IceStorm topping operations.
var (
	ErrInvalidFoodItem  = errors.New("invalid food item")
	ErrInvalidTopping   = errors.New("invalid topping")
	ErrDuplicateTopping = errors.New("topping has already been added")
)

// Food is a food item with a cataloged base price and optional toppings.
// Each topping's surcharge is captured from the catalog when it is added
// and stored with the topping, so a later catalog change can never alter
// an already-placed topping.
type Food struct {
	name      string
	basePrice decimal.Decimal
	toppings  map[string]decimal.Decimal
}

// NewFood creates a food item, locking in its name and catalog base price.
func NewFood(name string) (*Food, error) {
	price, ok := foodItems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidFoodItem, name, ValidFoodItems())
	}
	return &Food{
		name:      name,
		basePrice: price,
		toppings:  make(map[string]decimal.Decimal),
	}, nil
}

// Name returns the food item name.
func (f *Food) Name() string {
	return f.name
}

// BasePrice returns the locked-in base price of the item.
func (f *Food) BasePrice() decimal.Decimal {
	return f.basePrice
}

// AddTopping adds a topping, capturing its surcharge at call time. Fails
// without mutation if the topping is not cataloged or already present.
func (f *Food) AddTopping(topping string) error {
	price, ok := foodToppings[topping]
	if !ok {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidTopping, topping, ValidFoodToppings())
	}
	if _, ok := f.toppings[topping]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTopping, topping)
	}
	f.toppings[topping] = price
	return nil
}

// Toppings returns the added topping names sorted lexicographically.
func (f *Food) Toppings() []string {
	return sortedKeys(f.toppings)
}

// Price returns base price plus the sum of captured topping surcharges.
func (f *Food) Price() decimal.Decimal {
	total := f.basePrice
	for _, p := range f.toppings {
		total = total.Add(p)
	}
	return total
}

// Receipt renders the item as a multi-line description: name, base price,
// one line per topping in sorted order, and the total. Prices are always
// two decimals.
func (f *Food) Receipt() string {
	return itemReceipt(f.name, f.basePrice, f.toppings, f.Price())
}

func (f *Food) sealed() {}

// itemReceipt is the shared receipt body for priced items with toppings.
func itemReceipt(title string, base decimal.Decimal, toppings map[string]decimal.Decimal, total decimal.Decimal) string {
	lines := []string{title}
	lines = append(lines, fmt.Sprintf("- Base Price: $%s", base.StringFixed(2)))
	for _, name := range sortedKeys(toppings) {
		lines = append(lines, fmt.Sprintf("- %s: $%s", name, toppings[name].StringFixed(2)))
	}
	lines = append(lines, fmt.Sprintf("Total: $%s", total.StringFixed(2)))
	return strings.Join(lines, "\n")
}
