package queries

import (
	"context"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// ErrLoadNotVisible is returned to carriers asking for a load that is neither posted
// nor bound to them, and to shippers asking for someone else's load.
var ErrLoadNotVisible = errs.NewUnauthorizedError("load is not visible to this identity")

// GetLoadQueryHandler returns a load to its shipper, its carrier, admins, and to any
// carrier while it is still on the board.
type GetLoadQueryHandler struct {
	loads LoadReader
}

func NewGetLoadQueryHandler(loads LoadReader) GetLoadQueryHandler {
	return GetLoadQueryHandler{loads: loads}
}

func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (GetLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadQueryResponse{}, err
	}

	l, err := h.loads.Get(ctx, query.LoadID())
	if err != nil {
		return GetLoadQueryResponse{}, err
	}

	who := query.Actor()
	visible := l.IsOwner(who) ||
		l.IsAssignedCarrier(who) ||
		identity.IsAdmin(who) ||
		(identity.IsCarrier(who) && l.Status() == load.Posted)
	if !visible {
		return GetLoadQueryResponse{}, ErrLoadNotVisible
	}

	return NewGetLoadQueryResponse(l), nil
}
