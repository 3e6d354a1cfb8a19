package pos

import (
	"sort"
	"testing"
)

func TestCatalogListingsSorted(t *testing.T) {
	listings := map[string][]string{
		"drink bases":        ValidDrinkBases(),
		"drink flavors":      ValidDrinkFlavors(),
		"food items":         ValidFoodItems(),
		"food toppings":      ValidFoodToppings(),
		"ice storm flavors":  ValidIceStormFlavors(),
		"ice storm toppings": ValidIceStormToppings(),
	}
	for name, names := range listings {
		if len(names) == 0 {
			t.Fatalf("%s: empty catalog", name)
		}
		if !sort.StringsAreSorted(names) {
			t.Fatalf("%s: not sorted: %v", name, names)
		}
	}
}

func TestCatalogPrices(t *testing.T) {
	if p, ok := FoodItemPrice("Hotdog"); !ok || !p.Equal(money("2.30")) {
		t.Fatalf("Hotdog: got %s ok=%v, want 2.30", p, ok)
	}
	if p, ok := FoodToppingPrice("Chili"); !ok || !p.Equal(money("0.60")) {
		t.Fatalf("Chili: got %s ok=%v, want 0.60", p, ok)
	}
	if p, ok := IceStormFlavorPrice("Butter Pecan"); !ok || !p.Equal(money("3.50")) {
		t.Fatalf("Butter Pecan: got %s ok=%v, want 3.50", p, ok)
	}
	if p, ok := IceStormToppingPrice("T&T's"); !ok || !p.Equal(money("1.00")) {
		t.Fatalf("T&T's: got %s ok=%v, want 1.00", p, ok)
	}
	if _, ok := FoodItemPrice("Unknown"); ok {
		t.Fatal("Unknown food item reported as cataloged")
	}
}
