package enum

// ── Item kinds (wire values for order item requests) ──

const (
	ItemKindDrink    = "DRINK"
	ItemKindFood     = "FOOD"
	ItemKindIceStorm = "ICE_STORM"
)

// ── Staff roles ──

const (
	RoleCashier = "CASHIER"
)

// ── WebSocket event types ──

const (
	EventOrderUpdated = "order.updated"
	EventOrderClosed  = "order.closed"
)
