package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrListOffersQueryIsNotConstructed = errors.New(
	"ListOffersQuery must be created via NewListOffersQuery constructor",
)

// ListOffersQuery enumerates the offers on one load for its shipper or an admin.
//
// Example:
//
//	query, err := NewListOffersQuery(loadID, caller)
//	if err != nil {
//	    return err
//	}
//	offers, err := handler.Handle(ctx, query)
type ListOffersQuery struct {
	loadID kernel.UUID
	actor  identity.Identity

	guard guard.ConstructorGuard
}

func NewListOffersQuery(loadID kernel.UUID, actor identity.Identity) (ListOffersQuery, error) {
	if err := errors.Join(loadID.Validate(), validateActor(actor)); err != nil {
		return ListOffersQuery{}, err
	}
	return ListOffersQuery{loadID: loadID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOffersQuery) Validate() error {
	return q.guard.Validate(ErrListOffersQueryIsNotConstructed)
}

func (q ListOffersQuery) LoadID() kernel.UUID      { return q.loadID }
func (q ListOffersQuery) Actor() identity.Identity { return q.actor }

// ListOffersQueryResponse is one offer with the carrier display data captured at submission.
type ListOffersQueryResponse struct {
	ID              kernel.UUID
	LoadID          kernel.UUID
	CarrierID       kernel.UUID
	CarrierCompany  string
	CarrierMCNumber string
	Amount          kernel.Money
	Message         string
	Status          offer.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func validateActor(actor identity.Identity) error {
	if actor == nil {
		return errs.NewValueIsRequiredError("actor")
	}
	return actor.Validate()
}
