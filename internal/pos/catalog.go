package pos

import (
	"sort"

	"github.com/shopspring/decimal"
)

// The menu catalogs are fixed reference data with process lifetime. They
// are populated once below and never mutated; every lookup the rest of
// the package performs goes through the read-only accessors.

// drinkBases are the valid drink bases. Drinks carry no intrinsic price
// (the order charges a flat price per drink), so bases are a bare set.
var drinkBases = map[string]struct{}{
	"water":     {},
	"sbrite":    {},
	"pokeacola": {},
	"Mr. Salt":  {},
	"hill fog":  {},
	"leaf wine": {},
}

// drinkFlavors are the valid drink flavor add-ons. Flavors are free.
var drinkFlavors = map[string]struct{}{
	"lemon":      {},
	"cherry":     {},
	"strawberry": {},
	"mint":       {},
	"blueberry":  {},
	"lime":       {},
}

var foodItems = map[string]decimal.Decimal{
	"Hotdog":       money("2.30"),
	"Corndog":      money("2.00"),
	"Ice Cream":    money("3.00"),
	"Onion Rings":  money("1.75"),
	"French Fries": money("1.50"),
	"Tater Tots":   money("1.70"),
	"Nacho Chips":  money("1.90"),
}

var foodToppings = map[string]decimal.Decimal{
	"Cherry":          money("0.00"),
	"Whipped Cream":   money("0.00"),
	"Caramel Sauce":   money("0.50"),
	"Chocolate Sauce": money("0.50"),
	"Nacho Cheese":    money("0.30"),
	"Chili":           money("0.60"),
	"Bacon Bits":      money("0.30"),
	"Ketchup":         money("0.00"),
	"Mustard":         money("0.00"),
}

var iceStormFlavors = map[string]decimal.Decimal{
	"Mint Chocolate Chip": money("4.00"),
	"Chocolate":           money("3.00"),
	"Vanilla Bean":        money("3.00"),
	"Banana":              money("3.50"),
	"Butter Pecan":        money("3.50"),
	"S'more":              money("4.00"),
}

var iceStormToppings = map[string]decimal.Decimal{
	"Cherry":          money("0.00"),
	"Whipped Cream":   money("0.00"),
	"Caramel Sauce":   money("0.50"),
	"Chocolate Sauce": money("0.50"),
	"Storios":         money("1.00"),
	"Dig Dogs":        money("1.00"),
	"T&T's":           money("1.00"),
	"Cookie Dough":    money("1.00"),
	"Pecans":          money("0.50"),
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ValidDrinkBases returns the cataloged drink bases in sorted order.
func ValidDrinkBases() []string {
	return sortedKeys(drinkBases)
}

// ValidDrinkFlavors returns the cataloged drink flavors in sorted order.
func ValidDrinkFlavors() []string {
	return sortedKeys(drinkFlavors)
}

// ValidFoodItems returns the cataloged food item names in sorted order.
func ValidFoodItems() []string {
	return sortedKeys(foodItems)
}

// ValidFoodToppings returns the cataloged food topping names in sorted order.
func ValidFoodToppings() []string {
	return sortedKeys(foodToppings)
}

// ValidIceStormFlavors returns the cataloged Ice Storm flavors in sorted order.
func ValidIceStormFlavors() []string {
	return sortedKeys(iceStormFlavors)
}

// ValidIceStormToppings returns the cataloged Ice Storm topping names in
// sorted order.
func ValidIceStormToppings() []string {
	return sortedKeys(iceStormToppings)
}

// FoodItemPrice looks up the base price of a cataloged food item.
func FoodItemPrice(name string) (decimal.Decimal, bool) {
	p, ok := foodItems[name]
	return p, ok
}

// FoodToppingPrice looks up the surcharge of a cataloged food topping.
func FoodToppingPrice(name string) (decimal.Decimal, bool) {
	p, ok := foodToppings[name]
	return p, ok
}

// IceStormFlavorPrice looks up the base price of a cataloged Ice Storm flavor.
func IceStormFlavorPrice(name string) (decimal.Decimal, bool) {
	p, ok := iceStormFlavors[name]
	return p, ok
}

// IceStormToppingPrice looks up the surcharge of a cataloged Ice Storm topping.
func IceStormToppingPrice(name string) (decimal.Decimal, bool) {
	p, ok := iceStormToppings[name]
	return p, ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
