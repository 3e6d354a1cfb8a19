package pos

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewFoodLocksBasePrice(t *testing.T) {
	for _, name := range ValidFoodItems() {
		f, err := NewFood(name)
		if err != nil {
			t.Fatalf("new food %q: %v", name, err)
		}
		want, _ := FoodItemPrice(name)
		if !f.Price().Equal(want) {
			t.Fatalf("%q price before toppings: got %s, want %s", name, f.Price(), want)
		}
	}
}

func TestNewFoodInvalid(t *testing.T) {
	f, err := NewFood("Unknown")
	if !errors.Is(err, ErrInvalidFoodItem) {
		t.Fatalf("expected ErrInvalidFoodItem, got: %v", err)
	}
	if f != nil {
		t.Fatalf("expected nil food, got: %+v", f)
	}
}

func TestFoodAddToppingIncreasesPrice(t *testing.T) {
	for _, topping := range ValidFoodToppings() {
		f, err := NewFood("French Fries")
		if err != nil {
			t.Fatalf("new food: %v", err)
		}
		before := f.Price()
		if err := f.AddTopping(topping); err != nil {
			t.Fatalf("add topping %q: %v", topping, err)
		}
		surcharge, _ := FoodToppingPrice(topping)
		if got := f.Price(); !got.Equal(before.Add(surcharge)) {
			t.Fatalf("%q price after topping: got %s, want %s", topping, got, before.Add(surcharge))
		}
	}
}

func TestFoodAddToppingDuplicate(t *testing.T) {
	f, err := NewFood("Hotdog")
	if err != nil {
		t.Fatalf("new food: %v", err)
	}
	if err := f.AddTopping("Chili"); err != nil {
		t.Fatalf("add topping: %v", err)
	}
	priceAfterFirst := f.Price()

	if err := f.AddTopping("Chili"); !errors.Is(err, ErrDuplicateTopping) {
		t.Fatalf("expected ErrDuplicateTopping, got: %v", err)
	}
	if !f.Price().Equal(priceAfterFirst) {
		t.Fatalf("price changed by failed add: got %s, want %s", f.Price(), priceAfterFirst)
	}
}

func TestFoodAddToppingInvalid(t *testing.T) {
	f, err := NewFood("Corndog")
	if err != nil {
		t.Fatalf("new food: %v", err)
	}
	if err := f.AddTopping("Unknown"); !errors.Is(err, ErrInvalidTopping) {
		t.Fatalf("expected ErrInvalidTopping, got: %v", err)
	}
	if len(f.Toppings()) != 0 {
		t.Fatalf("toppings mutated by failed add: %v", f.Toppings())
	}
}

func TestFoodToppingsSorted(t *testing.T) {
	f, err := NewFood("Nacho Chips")
	if err != nil {
		t.Fatalf("new food: %v", err)
	}
	for _, topping := range []string{"Nacho Cheese", "Bacon Bits", "Chili"} {
		if err := f.AddTopping(topping); err != nil {
			t.Fatalf("add topping %q: %v", topping, err)
		}
	}
	want := []string{"Bacon Bits", "Chili", "Nacho Cheese"}
	if got := f.Toppings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("toppings: got %v, want %v", got, want)
	}
}

func TestFoodReceipt(t *testing.T) {
	f, err := NewFood("French Fries")
	if err != nil {
		t.Fatalf("new food: %v", err)
	}
	if err := f.AddTopping("Nacho Cheese"); err != nil {
		t.Fatalf("add topping: %v", err)
	}
	if err := f.AddTopping("Ketchup"); err != nil {
		t.Fatalf("add topping: %v", err)
	}

	want := "French Fries\n" +
		"- Base Price: $1.50\n" +
		"- Ketchup: $0.00\n" +
		"- Nacho Cheese: $0.30\n" +
		"Total: $1.80"
	if got := f.Receipt(); got != want {
		t.Fatalf("receipt:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
