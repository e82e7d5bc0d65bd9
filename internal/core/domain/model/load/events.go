package load

import (
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
)

const (
	EventLoadPosted        = "load.posted"
	EventLoadStatusChanged = "load.status_changed"
)

// PostedEvent is recorded when a shipper creates a load.
type PostedEvent struct {
	LoadID     kernel.UUID
	LoadNumber string
	ShipperID  kernel.UUID
	Rate       kernel.Money
	At         time.Time
}

func (e PostedEvent) EventName() string        { return EventLoadPosted }
func (e PostedEvent) AggregateID() kernel.UUID { return e.LoadID }
func (e PostedEvent) OccurredAt() time.Time    { return e.At }

// StatusChangedEvent is recorded for every status transition, including assignment.
type StatusChangedEvent struct {
	LoadID    kernel.UUID
	From      Status
	To        Status
	CarrierID *kernel.UUID
	ActorID   kernel.UUID
	ActorRole identity.Role
	At        time.Time
}

func (e StatusChangedEvent) EventName() string        { return EventLoadStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.LoadID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }
