package offerrepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgerr"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// oneAcceptedPerLoadIndex guards against two accepted offers on the same load.
const oneAcceptedPerLoadIndex = "offers_one_accepted_per_load_idx"

// GormOfferRepository implements ports.OfferRepository using GORM.
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// Upsert inserts the offer or, on a (load_id, carrier_id) conflict, overwrites the bid
// of the existing row and reopens it as pending, all in one statement.
func (r *GormOfferRepository) Upsert(ctx context.Context, o *offer.Offer) (*offer.Offer, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(o)
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "load_id"}, {Name: "carrier_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"carrier_company",
					"carrier_mc_number",
					"amount_cents",
					"message",
					"status",
					"updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(&dto).Error
	if err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return nil, errs.NewConflictErrorWithCause(offer.ErrDuplicateOffer.Reason, err)
		case pgerr.IsForeignKeyViolation(err):
			return nil, errs.NewObjectNotFoundErrorWithCause("load", o.LoadID().String(), err)
		case pgerr.IsCheckViolation(err):
			return nil, errs.NewValueIsInvalidErrorWithCause(pgerr.Constraint(err), err)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	return r.get(ctx, id, nil)
}

// FindByCarrier retrieves the offer of carrierID on loadID.
func (r *GormOfferRepository) FindByCarrier(ctx context.Context, loadID, carrierID kernel.UUID) (*offer.Offer, error) {
	if err := errors.Join(loadID.Validate(), carrierID.Validate()); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		Take(&dto, "load_id = ? AND carrier_id = ?", loadID.Bytes(), carrierID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", carrierID.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetForUpdate retrieves an offer by ID and locks its row FOR UPDATE.
func (r *GormOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	return r.get(ctx, id, &clause.Locking{Strength: "UPDATE"})
}

// Update writes the resolution of an offer that is still pending in storage.
func (r *GormOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	if err := o.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ? AND status = ?", o.ID().Bytes(), offer.Pending.String()).
		Updates(map[string]any{
			"status":     o.Status().String(),
			"updated_at": o.UpdatedAt(),
		})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) && pgerr.Constraint(result.Error) == oneAcceptedPerLoadIndex {
			return errs.NewConflictErrorWithCause(load.ErrLoadAlreadyAssigned.Reason, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return offer.ErrOfferNotPending
	}
	return nil
}

// RejectPendingExcept rejects all pending offers of loadID except acceptedID.
func (r *GormOfferRepository) RejectPendingExcept(ctx context.Context, loadID, acceptedID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("load_id = ? AND status = ? AND id <> ?", loadID.Bytes(), offer.Pending.String(), acceptedID.Bytes()).
		Updates(map[string]any{
			"status":     offer.Rejected.String(),
			"updated_at": gorm.Expr("now()"),
		})
	return result.RowsAffected, result.Error
}

// RejectPendingOnClosedLoads rejects pending offers whose load has left posted.
func (r *GormOfferRepository) RejectPendingOnClosedLoads(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("status = ?", offer.Pending.String()).
		Where("EXISTS (SELECT 1 FROM loads WHERE loads.id = offers.load_id AND loads.status <> ?)", load.Posted.String()).
		Updates(map[string]any{
			"status":     offer.Rejected.String(),
			"updated_at": gorm.Expr("now()"),
		})
	return result.RowsAffected, result.Error
}

func (r *GormOfferRepository) get(ctx context.Context, id kernel.UUID, lock *clause.Locking) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx)
	if lock != nil {
		q = q.Clauses(*lock)
	}

	var dto OfferDTO
	if err := q.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}
