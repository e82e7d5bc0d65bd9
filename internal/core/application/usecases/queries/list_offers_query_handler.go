package queries

import (
	"context"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOffersNotVisible is returned when someone other than the shipper or an admin lists offers.
var ErrOffersNotVisible = errs.NewUnauthorizedError("only the load owner or an admin may list its offers")

// ListOffersQueryHandler reads the offers of a load, newest first.
type ListOffersQueryHandler struct {
	db    *gorm.DB
	loads LoadReader
}

func NewListOffersQueryHandler(db *gorm.DB, loads LoadReader) ListOffersQueryHandler {
	return ListOffersQueryHandler{db: db, loads: loads}
}

// Handle returns ObjectNotFound for an unknown load and ErrOffersNotVisible for callers
// who are neither the owner nor an admin.
func (h ListOffersQueryHandler) Handle(ctx context.Context, query ListOffersQuery) ([]ListOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	l, err := h.loads.Get(ctx, query.LoadID())
	if err != nil {
		return nil, err
	}
	if !l.IsOwner(query.Actor()) && !identity.IsAdmin(query.Actor()) {
		return nil, ErrOffersNotVisible
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			carrier_company,
			carrier_mc_number,
			amount_cents,
			message,
			status,
			created_at,
			updated_at
		FROM offers
		WHERE load_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]ListOffersQueryResponse, 0)
	for rows.Next() {
		var (
			resp          ListOffersQueryResponse
			id, carrierID uuid.UUID
			amountCents   int64
			status        string
		)
		if err = rows.Scan(
			&id,
			&carrierID,
			&resp.CarrierCompany,
			&resp.CarrierMCNumber,
			&amountCents,
			&resp.Message,
			&status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.CarrierID, err = kernel.UUIDFrom(carrierID); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoney(amountCents); err != nil {
			return nil, err
		}
		if resp.Status, err = offer.ParseStatus(status); err != nil {
			return nil, err
		}
		resp.LoadID = l.ID()
		resp.CreatedAt = resp.CreatedAt.UTC()
		resp.UpdatedAt = resp.UpdatedAt.UTC()
		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
