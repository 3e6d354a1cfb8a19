package pos

import (
	"errors"
	"strings"
	"testing"
)

func TestNewIceStorm(t *testing.T) {
	s, err := NewIceStorm("Mint Chocolate Chip")
	if err != nil {
		t.Fatalf("new ice storm: %v", err)
	}
	if s.Flavor() != "Mint Chocolate Chip" {
		t.Fatalf("flavor: got %q", s.Flavor())
	}
	if !s.Price().Equal(money("4.00")) {
		t.Fatalf("price: got %s, want 4.00", s.Price())
	}
	if s.NumFlavors() != 1 {
		t.Fatalf("num flavors: got %d, want 1", s.NumFlavors())
	}
}

func TestNewIceStormInvalid(t *testing.T) {
	if _, err := NewIceStorm("Unknown"); !errors.Is(err, ErrInvalidIceStormFlavor) {
		t.Fatalf("expected ErrInvalidIceStormFlavor, got: %v", err)
	}
}

func TestIceStormToppingCatalogIsSeparate(t *testing.T) {
	s, err := NewIceStorm("Banana")
	if err != nil {
		t.Fatalf("new ice storm: %v", err)
	}
	// Chili is a food topping, not an Ice Storm topping.
	if err := s.AddTopping("Chili"); !errors.Is(err, ErrInvalidTopping) {
		t.Fatalf("expected ErrInvalidTopping, got: %v", err)
	}
	if err := s.AddTopping("Cookie Dough"); err != nil {
		t.Fatalf("add topping: %v", err)
	}
}

func TestIceStormDuplicateTopping(t *testing.T) {
	s, err := NewIceStorm("S'more")
	if err != nil {
		t.Fatalf("new ice storm: %v", err)
	}
	if err := s.AddTopping("Pecans"); err != nil {
		t.Fatalf("add topping: %v", err)
	}
	priceAfterFirst := s.Price()
	if err := s.AddTopping("Pecans"); !errors.Is(err, ErrDuplicateTopping) {
		t.Fatalf("expected ErrDuplicateTopping, got: %v", err)
	}
	if !s.Price().Equal(priceAfterFirst) {
		t.Fatalf("price changed by failed add: got %s, want %s", s.Price(), priceAfterFirst)
	}
}

func TestIceStormEndToEnd(t *testing.T) {
	s, err := NewIceStorm("Chocolate")
	if err != nil {
		t.Fatalf("new ice storm: %v", err)
	}
	if err := s.AddTopping("Cherry"); err != nil {
		t.Fatalf("add topping: %v", err)
	}
	if err := s.AddTopping("Storios"); err != nil {
		t.Fatalf("add topping: %v", err)
	}

	if !s.Price().Equal(money("4.00")) {
		t.Fatalf("total: got %s, want 4.00", s.Price())
	}

	receipt := s.Receipt()
	wantLines := []string{
		"Ice Storm - Chocolate",
		"- Base Price: $3.00",
		"- Cherry: $0.00",
		"- Storios: $1.00",
		"Total: $4.00",
	}
	got := strings.Split(receipt, "\n")
	if len(got) != len(wantLines) {
		t.Fatalf("receipt line count: got %d, want %d:\n%s", len(got), len(wantLines), receipt)
	}
	for i, want := range wantLines {
		if got[i] != want {
			t.Fatalf("receipt line %d: got %q, want %q", i, got[i], want)
		}
	}
}
