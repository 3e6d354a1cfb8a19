package pos

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidIceStormFlavor is returned when an Ice Storm is created with a
// flavor that is not on the menu.
var ErrInvalidIceStormFlavor = errors.New("invalid ice storm flavor")

// IceStorm is the Ice Storm dessert: one flavor fixed at construction plus
// optional toppings with surcharges captured at add time, same as Food but
// against the dessert catalogs.
type IceStorm struct {
	flavor    string
	basePrice decimal.Decimal
	toppings  map[string]decimal.Decimal
}

// NewIceStorm creates an Ice Storm of the given flavor. The flavor and its
// catalog base price are immutable afterwards.
func NewIceStorm(flavor string) (*IceStorm, error) {
	price, ok := iceStormFlavors[flavor]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidIceStormFlavor, flavor, ValidIceStormFlavors())
	}
	return &IceStorm{
		flavor:    flavor,
		basePrice: price,
		toppings:  make(map[string]decimal.Decimal),
	}, nil
}

// Flavor returns the fixed flavor of the Ice Storm.
func (s *IceStorm) Flavor() string {
	return s.flavor
}

// BasePrice returns the locked-in base price of the flavor.
func (s *IceStorm) BasePrice() decimal.Decimal {
	return s.basePrice
}

// AddTopping adds a topping from the Ice Storm topping catalog, capturing
// its surcharge at call time. Fails without mutation on unknown or
// duplicate toppings.
func (s *IceStorm) AddTopping(topping string) error {
	price, ok := iceStormToppings[topping]
	if !ok {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidTopping, topping, ValidIceStormToppings())
	}
	if _, ok := s.toppings[topping]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTopping, topping)
	}
	s.toppings[topping] = price
	return nil
}

// Toppings returns the added topping names sorted lexicographically.
func (s *IceStorm) Toppings() []string {
	return sortedKeys(s.toppings)
}

// Price returns base price plus the sum of captured topping surcharges.
func (s *IceStorm) Price() decimal.Decimal {
	total := s.basePrice
	for _, p := range s.toppings {
		total = total.Add(p)
	}
	return total
}

// NumFlavors always returns 1. An Ice Storm never mixes flavors, unlike a
// Drink which can carry several.
func (s *IceStorm) NumFlavors() int {
	return 1
}

// Receipt renders the dessert as a multi-line description headed by
// "Ice Storm - <flavor>", followed by base price, sorted topping lines,
// and the total.
func (s *IceStorm) Receipt() string {
	return itemReceipt("Ice Storm - "+s.flavor, s.basePrice, s.toppings, s.Price())
}

func (s *IceStorm) sealed() {}
