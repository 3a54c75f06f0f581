package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Events    *EventHandler
	Inventory *InventoryHandler
	Teams     *TeamHandler
	Chaos     *ChaosHandler
}

// NewRouter builds the route table. Method-scoped patterns; {sku} and {id}
// are pulled from the path by the handlers.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/events", h.Events.Create)
	mux.HandleFunc("GET /api/v1/events", h.Events.List)
	mux.HandleFunc("GET /api/v1/events/due", h.Events.Due)
	mux.HandleFunc("GET /api/v1/events/{id}", h.Events.Get)
	mux.HandleFunc("POST /api/v1/events/{id}/replay", h.Events.Replay)
	mux.HandleFunc("POST /api/v1/events/{id}/processed", h.Events.MarkProcessed)

	mux.HandleFunc("GET /api/v1/inventory", h.Inventory.List)
	mux.HandleFunc("GET /api/v1/inventory/{sku}", h.Inventory.Get)
	mux.HandleFunc("GET /api/v1/inventory/{sku}/history", h.Inventory.History)
	mux.HandleFunc("POST /api/v1/inventory/{sku}/restock", h.Inventory.Restock)
	mux.HandleFunc("POST /api/v1/inventory/{sku}/reserve", h.Inventory.Reserve)
	mux.HandleFunc("POST /api/v1/inventory/{sku}/release", h.Inventory.Release)
	mux.HandleFunc("POST /api/v1/inventory/{sku}/adjust", h.Inventory.Adjust)

	mux.HandleFunc("POST /api/v1/teams", h.Teams.Initialize)

	mux.HandleFunc("POST /api/v1/chaos/duplicate", h.Chaos.Duplicate)
	mux.HandleFunc("POST /api/v1/chaos/out-of-order", h.Chaos.OutOfOrder)
	mux.HandleFunc("POST /api/v1/chaos/delayed", h.Chaos.Delayed)

	return mux
}
