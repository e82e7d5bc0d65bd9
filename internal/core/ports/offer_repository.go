package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offers.
type OfferRepository interface {
	// Upsert inserts the offer, or atomically overwrites amount, message and carrier
	// snapshot of the existing (load, carrier) offer and resets it to pending.
	// It returns the stored row, which keeps the original id and creation time.
	Upsert(ctx context.Context, o *offer.Offer) (*offer.Offer, error)

	// Get retrieves an offer by id.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// FindByCarrier retrieves the offer carrierID placed on loadID, or returns
	// errs.ErrObjectNotFound when the carrier has not bid on it yet.
	FindByCarrier(ctx context.Context, loadID, carrierID kernel.UUID) (*offer.Offer, error)

	// GetForUpdate retrieves an offer under an exclusive row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// Update writes a resolved offer only if the stored row is still pending.
	// Otherwise it returns offer.ErrOfferNotPending.
	Update(ctx context.Context, o *offer.Offer) error

	// RejectPendingExcept rejects every pending offer on loadID other than acceptedID
	// and returns how many rows changed. Re-running it is a no-op.
	RejectPendingExcept(ctx context.Context, loadID, acceptedID kernel.UUID) (int64, error)

	// RejectPendingOnClosedLoads rejects pending offers whose load is no longer posted
	// and returns how many rows changed.
	RejectPendingOnClosedLoads(ctx context.Context) (int64, error)
}
