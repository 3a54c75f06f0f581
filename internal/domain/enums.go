package domain

// EventType identifies the kind of domain event.
//
// The set below is closed for payload validation purposes, but unknown
// types are still accepted by the event log (forward compatibility for
// competitor-defined events). Use IsKnown to distinguish.
type EventType string

const (
	EventOrderCreated         EventType = "order.created"
	EventOrderPaid            EventType = "order.paid"
	EventOrderCancelled       EventType = "order.cancelled"
	EventOrderRefundRequested EventType = "order.refund_requested"
	EventOrderDisputeOpened   EventType = "order.dispute_opened"
	EventInventoryRestocked   EventType = "inventory.restocked"
	EventInventoryShortage    EventType = "inventory.shortage_detected"
	EventInventoryAdjusted    EventType = "inventory.manual_adjusted"
	EventDuplicateSent        EventType = "event.duplicate_sent"
	EventDelayed              EventType = "event.delayed"
	EventOutOfOrder           EventType = "event.out_of_order"
)

func (t EventType) String() string { return string(t) }

// IsKnown reports whether the type belongs to the built-in event set.
func (t EventType) IsKnown() bool {
	switch t {
	case EventOrderCreated, EventOrderPaid, EventOrderCancelled,
		EventOrderRefundRequested, EventOrderDisputeOpened,
		EventInventoryRestocked, EventInventoryShortage, EventInventoryAdjusted,
		EventDuplicateSent, EventDelayed, EventOutOfOrder:
		return true
	}
	return false
}

// InventoryEventType identifies the kind of ledger mutation recorded in
// the inventory audit trail.
type InventoryEventType string

const (
	InventoryEventRestocked InventoryEventType = "restocked"
	InventoryEventReserved  InventoryEventType = "reserved"
	InventoryEventReleased  InventoryEventType = "released"
	InventoryEventAdjusted  InventoryEventType = "adjusted"
)

func (t InventoryEventType) String() string { return string(t) }

func (t InventoryEventType) IsValid() bool {
	switch t {
	case InventoryEventRestocked, InventoryEventReserved,
		InventoryEventReleased, InventoryEventAdjusted:
		return true
	}
	return false
}

// Actor identifies who performed a ledger mutation.
type Actor string

const (
	ActorStaff       Actor = "staff"
	ActorSystem      Actor = "system"
	ActorCustomerBot Actor = "customer_bot"
)

func (a Actor) String() string { return string(a) }

func (a Actor) IsValid() bool {
	switch a {
	case ActorStaff, ActorSystem, ActorCustomerBot:
		return true
	}
	return false
}
