package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cinos-pos/api/internal/enum"
	"github.com/cinos-pos/api/internal/pos"
	"github.com/cinos-pos/api/internal/service"
	"github.com/cinos-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderSessions defines the service methods needed by order handlers.
// Satisfied by *service.Sessions; narrow interface for testability.
type OrderSessions interface {
	Open() uuid.UUID
	Close(id uuid.UUID) error
	List() []uuid.UUID
	AddItem(id uuid.UUID, kind, name string, addOns []string) (*service.OrderSummary, error)
	RemoveItem(id uuid.UUID, index int) (*service.OrderSummary, error)
	Summary(id uuid.UUID) (*service.OrderSummary, error)
	Receipt(id uuid.UUID) (string, error)
}

// Broadcaster pushes order events to connected clients.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	BroadcastToOrder(orderID uuid.UUID, event ws.Event)
}

// OrderHandler handles order session endpoints.
type OrderHandler struct {
	sessions OrderSessions
	hub      Broadcaster
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(sessions OrderSessions, hub Broadcaster) *OrderHandler {
	return &OrderHandler{sessions: sessions, hub: hub}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Close)
	r.Post("/{id}/items", h.AddItem)
	r.Delete("/{id}/items/{index}", h.RemoveItem)
	r.Get("/{id}/receipt", h.Receipt)
}

// --- Request / Response types ---

type addItemRequest struct {
	Kind string `json:"kind"` // DRINK, FOOD or ICE_STORM
	// Name is the drink base (optional), food item, or Ice Storm flavor.
	Name string `json:"name"`
	// AddOns are drink flavors or food/dessert toppings.
	AddOns []string `json:"add_ons"`
}

type orderItemResponse struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	AddOns []string `json:"add_ons"`
	Price  string   `json:"price"`
}

type orderResponse struct {
	ID       uuid.UUID           `json:"id"`
	Items    []orderItemResponse `json:"items"`
	NumItems int                 `json:"num_items"`
	Total    string              `json:"total"`
}

func toOrderResponse(s *service.OrderSummary) orderResponse {
	items := make([]orderItemResponse, len(s.Items))
	for i, item := range s.Items {
		addOns := item.AddOns
		if addOns == nil {
			addOns = []string{}
		}
		items[i] = orderItemResponse{
			Kind:   item.Kind,
			Name:   item.Name,
			AddOns: addOns,
			Price:  item.Price.StringFixed(2),
		}
	}
	return orderResponse{
		ID:       s.ID,
		Items:    items,
		NumItems: s.NumItems,
		Total:    s.Total.StringFixed(2),
	}
}

// --- Helpers ---

// isValidationError reports whether the error is a caller-correctable
// input error from the pricing model.
func isValidationError(err error) bool {
	for _, target := range []error{
		pos.ErrInvalidBase,
		pos.ErrBaseAlreadySet,
		pos.ErrInvalidFlavor,
		pos.ErrDuplicateFlavor,
		pos.ErrInvalidFoodItem,
		pos.ErrInvalidIceStormFlavor,
		pos.ErrInvalidTopping,
		pos.ErrDuplicateTopping,
		pos.ErrInvalidItem,
		service.ErrInvalidItemKind,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type orderEventPayload struct {
	OrderID  uuid.UUID `json:"order_id"`
	NumItems int       `json:"num_items"`
	Total    string    `json:"total"`
}

func (h *OrderHandler) broadcast(eventType string, orderID uuid.UUID, numItems int, total string) {
	payload, err := json.Marshal(orderEventPayload{
		OrderID:  orderID,
		NumItems: numItems,
		Total:    total,
	})
	if err != nil {
		log.Printf("ERROR: marshal %s payload: %v", eventType, err)
		return
	}
	h.hub.BroadcastToOrder(orderID, ws.Event{Type: eventType, Payload: payload})
}

// --- Handlers ---

// Create handles POST /orders. Opens a new empty order session.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Open()
	summary, err := h.sessions.Summary(id)
	if err != nil {
		log.Printf("ERROR: summarize new order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(summary))
}

// List handles GET /orders. Returns the IDs of open order sessions.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ids := h.sessions.List()
	if ids == nil {
		ids = []uuid.UUID{}
	}
	writeJSON(w, http.StatusOK, map[string][]uuid.UUID{"orders": ids})
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	summary, err := h.sessions.Summary(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(summary))
}

// Close handles DELETE /orders/{id}. The session is gone afterwards.
func (h *OrderHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	if err := h.sessions.Close(id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: close order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcast(enum.EventOrderClosed, id, 0, "0.00")
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /orders/{id}/items.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Kind == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kind is required"})
		return
	}

	summary, err := h.sessions.AddItem(id, req.Kind, req.Name, req.AddOns)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("ERROR: add item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcast(enum.EventOrderUpdated, id, summary.NumItems, summary.Total.StringFixed(2))
	writeJSON(w, http.StatusCreated, toOrderResponse(summary))
}

// RemoveItem handles DELETE /orders/{id}/items/{index}.
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item index"})
		return
	}

	summary, err := h.sessions.RemoveItem(id, index)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		if errors.Is(err, pos.ErrIndexOutOfRange) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "item index out of range"})
			return
		}
		log.Printf("ERROR: remove item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcast(enum.EventOrderUpdated, id, summary.NumItems, summary.Total.StringFixed(2))
	writeJSON(w, http.StatusOK, toOrderResponse(summary))
}

// Receipt handles GET /orders/{id}/receipt. Plain text, the exact receipt
// shape consumers print.
func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	receipt, err := h.sessions.Receipt(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: render receipt: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt))
}
