package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery fetches a single load as seen by actor.
type GetLoadQuery struct {
	loadID kernel.UUID
	actor  identity.Identity

	guard guard.ConstructorGuard
}

func NewGetLoadQuery(loadID kernel.UUID, actor identity.Identity) (GetLoadQuery, error) {
	if err := errors.Join(loadID.Validate(), validateActor(actor)); err != nil {
		return GetLoadQuery{}, err
	}
	return GetLoadQuery{loadID: loadID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

func (q GetLoadQuery) LoadID() kernel.UUID      { return q.loadID }
func (q GetLoadQuery) Actor() identity.Identity { return q.actor }

// GetLoadQueryResponse is the full view of a load.
type GetLoadQueryResponse struct {
	ID          kernel.UUID
	Number      string
	ShipperID   kernel.UUID
	CarrierID   *kernel.UUID
	Status      load.Status
	Rate        kernel.Money
	Origin      string
	Destination string
	PickupAt    time.Time
	DeliverBy   *time.Time
	WeightLbs   int
	Equipment   string
	Notes       string
	PostedAt    time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// NewGetLoadQueryResponse flattens l. Command results reuse it so every load reaches
// clients in one shape.
func NewGetLoadQueryResponse(l *load.Load) GetLoadQueryResponse {
	d := l.Details()
	resp := GetLoadQueryResponse{
		ID:          l.ID(),
		Number:      l.Number(),
		ShipperID:   l.ShipperID(),
		CarrierID:   l.CarrierID(),
		Status:      l.Status(),
		Rate:        l.Rate(),
		Origin:      d.Origin(),
		Destination: d.Destination(),
		PickupAt:    d.PickupAt(),
		WeightLbs:   d.WeightLbs(),
		Equipment:   d.Equipment(),
		Notes:       d.Notes(),
		PostedAt:    l.PostedAt(),
		AssignedAt:  l.AssignedAt(),
		PickedUpAt:  l.PickedUpAt(),
		DeliveredAt: l.DeliveredAt(),
	}
	if deliverBy := d.DeliverBy(); !deliverBy.IsZero() {
		resp.DeliverBy = &deliverBy
	}
	return resp
}
