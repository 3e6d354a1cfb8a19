package handler

import (
	"net/http"

	"github.com/cinos-pos/api/internal/pos"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// MenuHandler serves the fixed menu catalogs. The catalogs are process-wide
// constants, so every endpoint is a pure read.
type MenuHandler struct{}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.FullMenu)
	r.Get("/drink-bases", h.DrinkBases)
	r.Get("/drink-flavors", h.DrinkFlavors)
	r.Get("/food-items", h.FoodItems)
	r.Get("/food-toppings", h.FoodToppings)
	r.Get("/ice-storm-flavors", h.IceStormFlavors)
	r.Get("/ice-storm-toppings", h.IceStormToppings)
}

// --- Response types ---

type pricedEntry struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type menuResponse struct {
	DrinkBases       []string      `json:"drink_bases"`
	DrinkFlavors     []string      `json:"drink_flavors"`
	DrinkPrice       string        `json:"drink_price"`
	FoodItems        []pricedEntry `json:"food_items"`
	FoodToppings     []pricedEntry `json:"food_toppings"`
	IceStormFlavors  []pricedEntry `json:"ice_storm_flavors"`
	IceStormToppings []pricedEntry `json:"ice_storm_toppings"`
}

func pricedEntries(names []string, lookup func(string) (decimal.Decimal, bool)) []pricedEntry {
	entries := make([]pricedEntry, len(names))
	for i, name := range names {
		price, _ := lookup(name)
		entries[i] = pricedEntry{Name: name, Price: price.StringFixed(2)}
	}
	return entries
}

// --- Handlers ---

// FullMenu returns every catalog in one response.
func (h *MenuHandler) FullMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menuResponse{
		DrinkBases:       pos.ValidDrinkBases(),
		DrinkFlavors:     pos.ValidDrinkFlavors(),
		DrinkPrice:       pos.DrinkPrice.StringFixed(2),
		FoodItems:        pricedEntries(pos.ValidFoodItems(), pos.FoodItemPrice),
		FoodToppings:     pricedEntries(pos.ValidFoodToppings(), pos.FoodToppingPrice),
		IceStormFlavors:  pricedEntries(pos.ValidIceStormFlavors(), pos.IceStormFlavorPrice),
		IceStormToppings: pricedEntries(pos.ValidIceStormToppings(), pos.IceStormToppingPrice),
	})
}

// DrinkBases returns the valid drink bases.
func (h *MenuHandler) DrinkBases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pos.ValidDrinkBases())
}

// DrinkFlavors returns the valid (free) drink flavors.
func (h *MenuHandler) DrinkFlavors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pos.ValidDrinkFlavors())
}

// FoodItems returns the food items with their base prices.
func (h *MenuHandler) FoodItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricedEntries(pos.ValidFoodItems(), pos.FoodItemPrice))
}

// FoodToppings returns the food toppings with their surcharges.
func (h *MenuHandler) FoodToppings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricedEntries(pos.ValidFoodToppings(), pos.FoodToppingPrice))
}

// IceStormFlavors returns the Ice Storm flavors with their base prices.
func (h *MenuHandler) IceStormFlavors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricedEntries(pos.ValidIceStormFlavors(), pos.IceStormFlavorPrice))
}

// IceStormToppings returns the Ice Storm toppings with their surcharges.
func (h *MenuHandler) IceStormToppings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricedEntries(pos.ValidIceStormToppings(), pos.IceStormToppingPrice))
}
