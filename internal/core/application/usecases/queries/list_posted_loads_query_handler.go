package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPostedLoadsQueryHandler reads posted loads, newest first.
type ListPostedLoadsQueryHandler struct {
	db *gorm.DB
}

func NewListPostedLoadsQueryHandler(db *gorm.DB) ListPostedLoadsQueryHandler {
	return ListPostedLoadsQueryHandler{db: db}
}

func (h ListPostedLoadsQueryHandler) Handle(
	ctx context.Context,
	query ListPostedLoadsQuery,
) ([]ListPostedLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_number,
			origin,
			destination,
			pickup_at,
			deliver_by,
			weight_lbs,
			equipment,
			rate_cents,
			posted_at
		FROM loads
		WHERE status = ?
		ORDER BY posted_at DESC, id DESC
		LIMIT ?
	`, load.Posted.String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]ListPostedLoadsQueryResponse, 0)
	for rows.Next() {
		var (
			resp      ListPostedLoadsQueryResponse
			id        uuid.UUID
			deliverBy sql.NullTime
			rateCents int64
		)
		if err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Origin,
			&resp.Destination,
			&resp.PickupAt,
			&deliverBy,
			&resp.WeightLbs,
			&resp.Equipment,
			&rateCents,
			&resp.PostedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.Rate, err = kernel.NewMoney(rateCents); err != nil {
			return nil, err
		}
		if deliverBy.Valid {
			t := deliverBy.Time.UTC()
			resp.DeliverBy = &t
		}
		resp.PickupAt = resp.PickupAt.UTC()
		resp.PostedAt = resp.PostedAt.UTC()
		loads = append(loads, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
