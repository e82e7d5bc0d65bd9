package loadrepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgerr"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository. tracker may be nil for
// read-only use.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a newly posted load.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return errs.NewConflictErrorWithCause("load already exists", err)
		case pgerr.IsCheckViolation(err):
			return errs.NewValueIsInvalidErrorWithCause(pgerr.Constraint(err), err)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a load by ID.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, id, nil)
}

// GetForUpdate retrieves a load by ID and locks its row FOR UPDATE.
func (r *GormLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, id, &clause.Locking{Strength: "UPDATE"})
}

// GetForShare retrieves a load by ID and locks its row FOR SHARE.
func (r *GormLoadRepository) GetForShare(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, id, &clause.Locking{Strength: "SHARE"})
}

// Update writes the load if the row still holds expectedStatus and the version the
// aggregate was read with, and bumps the version.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load, expectedStatus load.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND status = ? AND version = ?", dto.ID, expectedStatus.String(), aggregate.Version()).
		Select("*").
		Omit("id", "load_number", "shipper_id", "posted_at").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsConcurrencyFailure(result.Error) {
			return errs.NewConflictErrorWithCause(load.ErrLoadStateChanged.Reason, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return load.ErrLoadStateChanged
	}

	r.track(aggregate)
	return nil
}

func (r *GormLoadRepository) get(ctx context.Context, id kernel.UUID, lock *clause.Locking) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx)
	if lock != nil {
		q = q.Clauses(*lock)
	}

	var dto LoadDTO
	if err := q.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormLoadRepository) track(aggregate *load.Load) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
