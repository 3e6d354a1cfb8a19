package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cinos-pos/api/internal/pos"
)

// itemFlag collects repeated occurrences of a flag into a list.
type itemFlag []string

func (f *itemFlag) String() string {
	return strings.Join(*f, "; ")
}

func (f *itemFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var drinks, foods, storms itemFlag
	flag.Var(&drinks, "drink", "Drink spec as base:flavor,flavor (repeatable, e.g. -drink \"pokeacola:cherry,lime\")")
	flag.Var(&foods, "food", "Food spec as name:topping,topping (repeatable, e.g. -food \"Hotdog:Ketchup,Chili\")")
	flag.Var(&storms, "icestorm", "Ice Storm spec as flavor:topping,topping (repeatable, e.g. -icestorm \"Chocolate:Cherry\")")
	listMenu := flag.Bool("menu", false, "Print the full menu and exit")
	flag.Parse()

	if *listMenu {
		printMenu()
		return
	}

	order := pos.NewOrder()

	for _, spec := range drinks {
		base, flavors := splitSpec(spec)
		drink := pos.NewDrink()
		if base != "" {
			if err := drink.SetBase(base); err != nil {
				log.Fatalf("Invalid drink %q: %v", spec, err)
			}
		}
		for _, flavor := range flavors {
			if err := drink.AddFlavor(flavor); err != nil {
				log.Fatalf("Invalid drink %q: %v", spec, err)
			}
		}
		if err := order.Add(drink); err != nil {
			log.Fatalf("Failed to add drink: %v", err)
		}
	}

	for _, spec := range foods {
		name, toppings := splitSpec(spec)
		food, err := pos.NewFood(name)
		if err != nil {
			log.Fatalf("Invalid food %q: %v", spec, err)
		}
		for _, topping := range toppings {
			if err := food.AddTopping(topping); err != nil {
				log.Fatalf("Invalid food %q: %v", spec, err)
			}
		}
		if err := order.Add(food); err != nil {
			log.Fatalf("Failed to add food: %v", err)
		}
	}

	for _, spec := range storms {
		flavor, toppings := splitSpec(spec)
		storm, err := pos.NewIceStorm(flavor)
		if err != nil {
			log.Fatalf("Invalid ice storm %q: %v", spec, err)
		}
		for _, topping := range toppings {
			if err := storm.AddTopping(topping); err != nil {
				log.Fatalf("Invalid ice storm %q: %v", spec, err)
			}
		}
		if err := order.Add(storm); err != nil {
			log.Fatalf("Failed to add ice storm: %v", err)
		}
	}

	fmt.Println(order.Receipt())
}

// splitSpec parses "name:addon,addon" into its parts. The addon list
// is optional, as is everything after a trailing colon.
func splitSpec(spec string) (string, []string) {
	name, rest, found := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !found || strings.TrimSpace(rest) == "" {
		return name, nil
	}
	parts := strings.Split(rest, ",")
	addons := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			addons = append(addons, p)
		}
	}
	return name, addons
}

func printMenu() {
	fmt.Println("Drink bases:")
	for _, base := range pos.ValidDrinkBases() {
		fmt.Printf("  %s\n", base)
	}
	fmt.Println("Drink flavors:")
	for _, flavor := range pos.ValidDrinkFlavors() {
		fmt.Printf("  %s\n", flavor)
	}
	fmt.Printf("All drinks cost $%s.\n", pos.DrinkPrice.StringFixed(2))

	fmt.Println("Food items:")
	for _, name := range pos.ValidFoodItems() {
		price, _ := pos.FoodItemPrice(name)
		fmt.Printf("  %s - $%s\n", name, price.StringFixed(2))
	}
	fmt.Println("Food toppings:")
	for _, name := range pos.ValidFoodToppings() {
		price, _ := pos.FoodToppingPrice(name)
		fmt.Printf("  %s - $%s\n", name, price.StringFixed(2))
	}

	fmt.Println("Ice Storm flavors:")
	for _, name := range pos.ValidIceStormFlavors() {
		price, _ := pos.IceStormFlavorPrice(name)
		fmt.Printf("  %s - $%s\n", name, price.StringFixed(2))
	}
	fmt.Println("Ice Storm toppings:")
	for _, name := range pos.ValidIceStormToppings() {
		price, _ := pos.IceStormToppingPrice(name)
		fmt.Printf("  %s - $%s\n", name, price.StringFixed(2))
	}
}
