package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team is a competitor team registered on the platform.
type Team struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
