package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cinos-pos/api/internal/enum"
	"github.com/cinos-pos/api/internal/pos"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by the session service.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidItemKind = errors.New("invalid item kind")
)

// Sessions is the in-memory registry of open orders, keyed by register-
// assigned order ID. Orders live only for the process lifetime; there is
// no persistence behind them.
//
// pos.Order assumes a single writer, so the registry serializes all order
// access behind one mutex. Good enough for a single register; shard the
// lock per order if that ever becomes a bottleneck.
type Sessions struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*pos.Order
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{orders: make(map[uuid.UUID]*pos.Order)}
}

// ItemSummary describes one order entry for API consumers.
type ItemSummary struct {
	Kind   string
	Name   string   // drink base (may be empty), food item, or dessert flavor
	AddOns []string // flavors or toppings, sorted
	Price  decimal.Decimal
}

// OrderSummary is a point-in-time view of an order.
type OrderSummary struct {
	ID       uuid.UUID
	Items    []ItemSummary
	NumItems int
	Total    decimal.Decimal
}

// Open creates a new empty order and returns its ID.
func (s *Sessions) Open() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.orders[id] = pos.NewOrder()
	return id
}

// Close removes the order from the registry.
func (s *Sessions) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}

// List returns the IDs of all open orders.
func (s *Sessions) List() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	return ids
}

// AddDrink builds a drink (optional base, optional flavor set), validates
// it against the catalogs, and appends it to the order. Nothing is added
// on any validation failure.
func (s *Sessions) AddDrink(id uuid.UUID, base string, flavors []string) (*OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	drink := pos.NewDrink()
	if base != "" {
		if err := drink.SetBase(base); err != nil {
			return nil, err
		}
	}
	if len(flavors) > 0 {
		if err := drink.SetFlavors(flavors); err != nil {
			return nil, err
		}
	}
	if err := order.Add(drink); err != nil {
		return nil, err
	}
	return summarize(id, order), nil
}

// AddFood builds a food item with its toppings and appends it to the
// order. Nothing is added on any validation failure.
func (s *Sessions) AddFood(id uuid.UUID, item string, toppings []string) (*OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	food, err := pos.NewFood(item)
	if err != nil {
		return nil, err
	}
	for _, topping := range toppings {
		if err := food.AddTopping(topping); err != nil {
			return nil, err
		}
	}
	if err := order.Add(food); err != nil {
		return nil, err
	}
	return summarize(id, order), nil
}

// AddIceStorm builds an Ice Storm with its toppings and appends it to the
// order. Nothing is added on any validation failure.
func (s *Sessions) AddIceStorm(id uuid.UUID, flavor string, toppings []string) (*OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	storm, err := pos.NewIceStorm(flavor)
	if err != nil {
		return nil, err
	}
	for _, topping := range toppings {
		if err := storm.AddTopping(topping); err != nil {
			return nil, err
		}
	}
	if err := order.Add(storm); err != nil {
		return nil, err
	}
	return summarize(id, order), nil
}

// RemoveItem removes the entry at the given position.
func (s *Sessions) RemoveItem(id uuid.UUID, index int) (*OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := order.Remove(index); err != nil {
		return nil, err
	}
	return summarize(id, order), nil
}

// Summary returns the current view of an order.
func (s *Sessions) Summary(id uuid.UUID) (*OrderSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return summarize(id, order), nil
}

// Receipt renders the order's textual receipt.
func (s *Sessions) Receipt(id uuid.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return "", ErrOrderNotFound
	}
	return order.Receipt(), nil
}

// summarize builds an OrderSummary. Caller holds the registry lock.
func summarize(id uuid.UUID, order *pos.Order) *OrderSummary {
	items := make([]ItemSummary, 0, order.NumItems())
	for _, item := range order.Items() {
		switch v := item.(type) {
		case *pos.Drink:
			items = append(items, ItemSummary{
				Kind:   enum.ItemKindDrink,
				Name:   v.Base(),
				AddOns: v.Flavors(),
				Price:  pos.DrinkPrice,
			})
		case *pos.Food:
			items = append(items, ItemSummary{
				Kind:   enum.ItemKindFood,
				Name:   v.Name(),
				AddOns: v.Toppings(),
				Price:  v.Price(),
			})
		case *pos.IceStorm:
			items = append(items, ItemSummary{
				Kind:   enum.ItemKindIceStorm,
				Name:   v.Flavor(),
				AddOns: v.Toppings(),
				Price:  v.Price(),
			})
		}
	}
	return &OrderSummary{
		ID:       id,
		Items:    items,
		NumItems: order.NumItems(),
		Total:    order.Total(),
	}
}

// AddItem dispatches on the wire item kind. Flavors double as the name
// add-ons for drinks; name is the base/item/flavor depending on kind.
func (s *Sessions) AddItem(id uuid.UUID, kind, name string, addOns []string) (*OrderSummary, error) {
	switch kind {
	case enum.ItemKindDrink:
		return s.AddDrink(id, name, addOns)
	case enum.ItemKindFood:
		return s.AddFood(id, name, addOns)
	case enum.ItemKindIceStorm:
		return s.AddIceStorm(id, name, addOns)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidItemKind, kind)
}
