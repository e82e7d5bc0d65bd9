package offer

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// MaxMessageLength bounds the note a carrier attaches to an offer.
const MaxMessageLength = 1000

var (
	// ErrOfferIsNotConstructed is returned when an Offer was not created through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructor")
	// ErrOfferNotPending is returned when an offer that is already resolved is resolved again.
	ErrOfferNotPending = errs.NewPreconditionFailedError("offer is no longer pending")
	// ErrInvalidDecision is returned for decisions other than accepted or rejected.
	ErrInvalidDecision = errs.NewValueIsInvalidErrorWithCause("decision is invalid",
		errors.New("decision must be accepted or rejected"))
	// ErrDuplicateOffer is surfaced when the (load, carrier) uniqueness constraint trips.
	ErrDuplicateOffer = errs.NewConflictError("an offer from this carrier already exists for the load")
)

// Offer is a carrier's bid on a load. It carries a snapshot of the carrier's display
// data taken at submission so the shipper can list offers without another lookup.
type Offer struct {
	id             kernel.UUID
	loadID         kernel.UUID
	carrierID      kernel.UUID
	carrierCompany string
	carrierMC      string
	amount         kernel.Money
	message        string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

// NewOffer builds a pending offer from carrier on loadID.
func NewOffer(
	id, loadID kernel.UUID,
	carrier identity.Carrier,
	amount kernel.Money,
	message string,
	now time.Time,
) (*Offer, error) {
	message = strings.TrimSpace(message)
	if err := errors.Join(
		id.Validate(),
		loadID.Validate(),
		carrier.Validate(),
		amount.Validate(),
		validateMessage(message),
	); err != nil {
		return nil, err
	}

	at := now.UTC()
	return &Offer{
		id:             id,
		loadID:         loadID,
		carrierID:      carrier.ID(),
		carrierCompany: carrier.CompanyName(),
		carrierMC:      carrier.MCNumber(),
		amount:         amount,
		message:        message,
		status:         Pending,
		createdAt:      at,
		updatedAt:      at,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreOffer reconstructs an Offer from persistent storage.
func RestoreOffer(
	id, loadID, carrierID kernel.UUID,
	carrierCompany, carrierMC string,
	amount kernel.Money,
	message string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		loadID.Validate(),
		carrierID.Validate(),
		amount.Validate(),
		status.Validate(),
		validateMessage(message),
	); err != nil {
		return nil, err
	}

	return &Offer{
		id:             id,
		loadID:         loadID,
		carrierID:      carrierID,
		carrierCompany: carrierCompany,
		carrierMC:      carrierMC,
		amount:         amount,
		message:        message,
		status:         status,
		createdAt:      createdAt.UTC(),
		updatedAt:      updatedAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) ID() kernel.UUID         { return o.id }
func (o *Offer) LoadID() kernel.UUID     { return o.loadID }
func (o *Offer) CarrierID() kernel.UUID  { return o.carrierID }
func (o *Offer) CarrierCompany() string  { return o.carrierCompany }
func (o *Offer) CarrierMCNumber() string { return o.carrierMC }
func (o *Offer) Amount() kernel.Money    { return o.amount }
func (o *Offer) Message() string         { return o.message }
func (o *Offer) Status() Status          { return o.status }
func (o *Offer) CreatedAt() time.Time    { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time    { return o.updatedAt }

// BelongsTo reports whether the offer was made on loadID.
func (o *Offer) BelongsTo(loadID kernel.UUID) bool {
	return o.loadID.IsEqual(loadID)
}

// Resubmit replaces the bid of carrier on the same load and reopens the offer as
// pending. The storage upsert applies the same change atomically.
func (o *Offer) Resubmit(carrier identity.Carrier, amount kernel.Money, message string, now time.Time) error {
	message = strings.TrimSpace(message)
	if err := errors.Join(
		carrier.Validate(),
		amount.Validate(),
		validateMessage(message),
	); err != nil {
		return err
	}
	if !carrier.ID().IsEqual(o.carrierID) {
		return errs.NewUnauthorizedError("offer belongs to another carrier")
	}

	o.carrierCompany = carrier.CompanyName()
	o.carrierMC = carrier.MCNumber()
	o.amount = amount
	o.message = message
	o.status = Pending
	o.updatedAt = now.UTC()
	return nil
}

// Accept marks a pending offer accepted.
func (o *Offer) Accept(now time.Time) error {
	return o.resolve(Accepted, now)
}

// Reject marks a pending offer rejected.
func (o *Offer) Reject(now time.Time) error {
	return o.resolve(Rejected, now)
}

func (o *Offer) resolve(decision Status, now time.Time) error {
	newStatus, err := o.status.Resolve(decision)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = now.UTC()
	return nil
}

func validateMessage(message string) error {
	if n := utf8.RuneCountInString(message); n > MaxMessageLength {
		return errs.NewValueIsOutOfRangeError("message length", n, 0, MaxMessageLength)
	}
	return nil
}
