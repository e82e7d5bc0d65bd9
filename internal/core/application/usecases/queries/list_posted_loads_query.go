package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	DefaultBoardLimit = 50
	MaxBoardLimit     = 200
)

var ErrListPostedLoadsQueryIsNotConstructed = errors.New(
	"ListPostedLoadsQuery must be created via NewListPostedLoadsQuery constructor",
)

// ListPostedLoadsQuery reads the load board: loads still open for offers.
type ListPostedLoadsQuery struct {
	actor identity.Identity
	limit int

	guard guard.ConstructorGuard
}

// NewListPostedLoadsQuery takes a page size in 1..MaxBoardLimit; zero selects DefaultBoardLimit.
func NewListPostedLoadsQuery(actor identity.Identity, limit int) (ListPostedLoadsQuery, error) {
	if limit == 0 {
		limit = DefaultBoardLimit
	}

	var limitErr error
	if limit < 1 || limit > MaxBoardLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxBoardLimit)
	}

	if err := errors.Join(validateActor(actor), limitErr); err != nil {
		return ListPostedLoadsQuery{}, err
	}
	return ListPostedLoadsQuery{actor: actor, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPostedLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListPostedLoadsQueryIsNotConstructed)
}

func (q ListPostedLoadsQuery) Actor() identity.Identity { return q.actor }
func (q ListPostedLoadsQuery) Limit() int               { return q.limit }

// ListPostedLoadsQueryResponse is a board entry. Notes and party ids are left out.
type ListPostedLoadsQueryResponse struct {
	ID          kernel.UUID
	Number      string
	Origin      string
	Destination string
	PickupAt    time.Time
	DeliverBy   *time.Time
	WeightLbs   int
	Equipment   string
	Rate        kernel.Money
	PostedAt    time.Time
}
