package inventory

import (
	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
)

// InitializeTeamInput holds the parameters for registering a team and
// seeding its inventory rows.
type InitializeTeamInput struct {
	TeamID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i *InitializeTeamInput) Validate() error {
	var errs []domain.FieldError

	if i.TeamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RestockInput holds the parameters for adding stock.
type RestockInput struct {
	TeamID   uuid.UUID
	SKU      string
	Quantity int
	By       domain.Actor
}

// Validate checks all fields and collects all errors.
func (i *RestockInput) Validate() error {
	var errs []domain.FieldError

	if i.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if !i.By.IsValid() {
		errs = append(errs, domain.FieldError{Field: "by", Message: "must be staff, system, or customer_bot"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReserveInput holds the parameters for reserving stock for an order.
type ReserveInput struct {
	TeamID   uuid.UUID
	SKU      string
	Quantity int
	OrderID  string
	By       domain.Actor
}

// Validate checks all fields and collects all errors.
func (i *ReserveInput) Validate() error {
	var errs []domain.FieldError

	if i.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.OrderID == "" {
		errs = append(errs, domain.FieldError{Field: "order_id", Message: "required"})
	}
	if !i.By.IsValid() {
		errs = append(errs, domain.FieldError{Field: "by", Message: "must be staff, system, or customer_bot"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReleaseInput holds the parameters for fulfilling a reservation.
type ReleaseInput struct {
	TeamID   uuid.UUID
	SKU      string
	Quantity int
	OrderID  string
	By       domain.Actor
}

// Validate checks all fields and collects all errors.
func (i *ReleaseInput) Validate() error {
	var errs []domain.FieldError

	if i.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.OrderID == "" {
		errs = append(errs, domain.FieldError{Field: "order_id", Message: "required"})
	}
	if !i.By.IsValid() {
		errs = append(errs, domain.FieldError{Field: "by", Message: "must be staff, system, or customer_bot"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdjustInput holds the parameters for a manual stock correction.
type AdjustInput struct {
	TeamID uuid.UUID
	SKU    string
	Delta  int
	Reason string
}

// Validate checks all fields and collects all errors.
func (i *AdjustInput) Validate() error {
	var errs []domain.FieldError

	if i.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if i.Delta == 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must be non-zero"})
	}
	if i.Reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetItemHistoryInput holds the parameters for fetching an item's
// mutation history.
type GetItemHistoryInput struct {
	TeamID uuid.UUID
	SKU    string
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *GetItemHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.SKU == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
