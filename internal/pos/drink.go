package pos

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by Drink operations.
var (
	ErrBaseAlreadySet  = errors.New("drink base has already been set")
	ErrInvalidBase     = errors.New("invalid drink base")
	ErrInvalidFlavor   = errors.New("invalid drink flavor")
	ErrDuplicateFlavor = errors.New("flavor has already been added")
)

// Drink is a drink with a single base and any number of free flavor
// add-ons. Drinks carry no intrinsic price; the order charges a flat
// price per drink regardless of base or flavors.
type Drink struct {
	base    string
	flavors map[string]struct{}
}

// NewDrink creates a drink with no base and no flavors.
func NewDrink() *Drink {
	return &Drink{flavors: make(map[string]struct{})}
}

// Base returns the selected base, or the empty string when none is set.
func (d *Drink) Base() string {
	return d.base
}

// SetBase records the drink base. The base is single-assignment: once set
// it cannot be replaced, even with the same name.
func (d *Drink) SetBase(base string) error {
	if d.base != "" {
		return ErrBaseAlreadySet
	}
	if _, ok := drinkBases[base]; !ok {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidBase, base, ValidDrinkBases())
	}
	d.base = base
	return nil
}

// AddFlavor adds a single flavor. Fails if the flavor is not cataloged or
// was already added; a failed add leaves the flavor set untouched.
func (d *Drink) AddFlavor(flavor string) error {
	if _, ok := drinkFlavors[flavor]; !ok {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidFlavor, flavor, ValidDrinkFlavors())
	}
	if _, ok := d.flavors[flavor]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFlavor, flavor)
	}
	d.flavors[flavor] = struct{}{}
	return nil
}

// SetFlavors replaces the entire flavor set atomically. Duplicates in the
// input collapse; if any name is not cataloged the current set is kept and
// the error reports every offending name.
func (d *Drink) SetFlavors(flavors []string) error {
	next := make(map[string]struct{}, len(flavors))
	var invalid []string
	for _, f := range flavors {
		if _, ok := drinkFlavors[f]; !ok {
			invalid = append(invalid, f)
			continue
		}
		next[f] = struct{}{}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fmt.Errorf("%w: %v (valid: %v)", ErrInvalidFlavor, invalid, ValidDrinkFlavors())
	}
	d.flavors = next
	return nil
}

// Flavors returns the added flavors sorted lexicographically.
func (d *Drink) Flavors() []string {
	return sortedKeys(d.flavors)
}

// NumFlavors returns how many flavors have been added.
func (d *Drink) NumFlavors() int {
	return len(d.flavors)
}

func (d *Drink) sealed() {}
