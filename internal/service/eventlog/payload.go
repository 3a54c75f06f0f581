package eventlog

import (
	"encoding/json"
	"fmt"

	"github.com/marketstage/backend/internal/domain"
)

// payloadFieldErrors validates the payload shape for the built-in event
// types. Unknown types are accepted without validation so competitors can
// define their own events; known types with malformed payloads are
// rejected.
func payloadFieldErrors(t domain.EventType, payload json.RawMessage) []domain.FieldError {
	switch t {
	case domain.EventOrderCreated, domain.EventOrderPaid:
		return orderWithItemsErrors(payload)
	case domain.EventOrderCancelled, domain.EventOrderRefundRequested, domain.EventOrderDisputeOpened:
		return orderRefErrors(payload)
	case domain.EventInventoryRestocked, domain.EventInventoryAdjusted:
		return skuQuantityErrors(payload)
	default:
		return nil
	}
}

type orderItem struct {
	SKU *string  `json:"sku"`
	Qty *float64 `json:"qty"`
}

func orderWithItemsErrors(payload json.RawMessage) []domain.FieldError {
	var doc struct {
		OrderID *string      `json:"orderId"`
		Items   *[]orderItem `json:"items"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return []domain.FieldError{{Field: "payload", Message: "must be a JSON object"}}
	}

	var errs []domain.FieldError
	if doc.OrderID == nil || *doc.OrderID == "" {
		errs = append(errs, domain.FieldError{Field: "payload.orderId", Message: "required string"})
	}
	if doc.Items == nil {
		errs = append(errs, domain.FieldError{Field: "payload.items", Message: "required array"})
		return errs
	}
	for idx, item := range *doc.Items {
		if item.SKU == nil || *item.SKU == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("payload.items[%d].sku", idx),
				Message: "required string",
			})
		}
		if item.Qty == nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("payload.items[%d].qty", idx),
				Message: "required number",
			})
		}
	}
	return errs
}

func orderRefErrors(payload json.RawMessage) []domain.FieldError {
	var doc struct {
		OrderID *string `json:"orderId"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return []domain.FieldError{{Field: "payload", Message: "must be a JSON object"}}
	}
	if doc.OrderID == nil || *doc.OrderID == "" {
		return []domain.FieldError{{Field: "payload.orderId", Message: "required string"}}
	}
	return nil
}

func skuQuantityErrors(payload json.RawMessage) []domain.FieldError {
	var doc struct {
		SKU      *string  `json:"sku"`
		Quantity *float64 `json:"quantity"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return []domain.FieldError{{Field: "payload", Message: "must be a JSON object"}}
	}

	var errs []domain.FieldError
	if doc.SKU == nil || *doc.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "payload.sku", Message: "required string"})
	}
	if doc.Quantity == nil {
		errs = append(errs, domain.FieldError{Field: "payload.quantity", Message: "required number"})
	}
	return errs
}
