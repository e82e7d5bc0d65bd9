package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for load operations. Each one names the violated rule and unwraps
// to its errs kind, so callers can match either.
var (
	// ErrLoadIsNotConstructed is returned when a Load was not created through NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")
	// ErrLoadAlreadyAssigned is returned when an offer is resolved on a load that is no longer posted.
	ErrLoadAlreadyAssigned = errs.NewConflictError("load is already assigned")
	// ErrLoadStateChanged is returned when a conditional update finds the load changed since it was read.
	ErrLoadStateChanged = errs.NewConflictError("load was modified concurrently")
	// ErrLoadNotPostable is returned when an offer targets a load that is not posted.
	ErrLoadNotPostable = errs.NewPreconditionFailedError("load is no longer available for offers")
	// ErrLoadLocked is returned when descriptive fields are edited after a carrier is bound.
	ErrLoadLocked = errs.NewPreconditionFailedError("load is locked after assignment")
	// ErrLoadClosed is returned when a cancelled or delivered load is edited.
	ErrLoadClosed = errs.NewPreconditionFailedError("load is closed")
	// ErrSelfOfferForbidden is returned when a party bids on a load it owns.
	ErrSelfOfferForbidden = errs.NewUnauthorizedError("shipper cannot bid on own load")
	// ErrNotLoadOwner is returned when the actor is not the load's shipper.
	ErrNotLoadOwner = errs.NewUnauthorizedError("only the load owner may do this")
	// ErrNotAssignedCarrier is returned when the actor is not the load's bound carrier.
	ErrNotAssignedCarrier = errs.NewUnauthorizedError("only the assigned carrier may do this")
	// ErrNothingToChange is returned when an edit request carries no fields.
	ErrNothingToChange = errs.NewValueIsRequiredError("edits")
)

// loadNumberPrefix starts every human-readable load number.
const loadNumberPrefix = "LD"

// Load is the aggregate root of the marketplace: a shippable job posted by a shipper
// that moves through its status lifecycle to delivery or cancellation.
//
// Invariants:
//   - shipperID is set once at creation and never changes
//   - carrierID is set iff status is assigned, in_transit, delivered_pending or delivered
//   - assignedAt, pickedUpAt and deliveredAt are set at most once and never reset
//   - descriptive fields and rate are editable only while no carrier is bound
type Load struct {
	kernel.EventRecorder

	id          kernel.UUID
	number      string
	shipperID   kernel.UUID
	carrierID   *kernel.UUID
	status      Status
	rate        kernel.Money
	details     Details
	postedAt    time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	version     int

	guard guard.ConstructorGuard
}

// NewLoad posts a new load owned by shipper. The load starts in Posted with no carrier
// and the rate the shipper asks for.
//
// Example:
//
//	details, _ := load.NewDetails("Dallas, TX", "Tulsa, OK", pickup, deliverBy, 42000, "dry van", "")
//	rate, _ := kernel.NewMoney(185000)
//	l, err := load.NewLoad(kernel.NewUUID(), shipper, details, rate, time.Now())
func NewLoad(id kernel.UUID, shipper identity.Shipper, details Details, rate kernel.Money, now time.Time) (*Load, error) {
	if err := errors.Join(
		id.Validate(),
		shipper.Validate(),
		details.Validate(),
		rate.Validate(),
	); err != nil {
		return nil, err
	}

	postedAt := now.UTC()
	l := &Load{
		id:        id,
		number:    NewLoadNumber(id, postedAt),
		shipperID: shipper.ID(),
		status:    Posted,
		rate:      rate,
		details:   details,
		postedAt:  postedAt,
		guard:     guard.NewConstructorGuard(),
	}

	l.Record(PostedEvent{
		LoadID:     l.id,
		LoadNumber: l.number,
		ShipperID:  l.shipperID,
		Rate:       l.rate,
		At:         postedAt,
	})

	return l, nil
}

// RestoreLoad reconstructs a Load from persistent storage. No events are recorded.
// It rejects rows that break the carrier/status invariant.
func RestoreLoad(
	id kernel.UUID,
	number string,
	shipperID kernel.UUID,
	carrierID *kernel.UUID,
	status Status,
	rate kernel.Money,
	details Details,
	postedAt time.Time,
	assignedAt, pickedUpAt, deliveredAt *time.Time,
	version int,
) (*Load, error) {
	if err := errors.Join(
		id.Validate(),
		shipperID.Validate(),
		status.Validate(),
		status.ValidateCanHaveCarrier(carrierID != nil),
		rate.Validate(),
		details.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(number) == "" {
		return nil, errs.NewValueIsRequiredError("load number")
	}
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Load{
		id:          id,
		number:      number,
		shipperID:   shipperID,
		carrierID:   carrierID,
		status:      status,
		rate:        rate,
		details:     details,
		postedAt:    postedAt.UTC(),
		assignedAt:  assignedAt,
		pickedUpAt:  pickedUpAt,
		deliveredAt: deliveredAt,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewLoadNumber formats the human-readable number LD-YYMMDD-XXXXXXXXXXXX from the posting
// date and the first twelve hex digits of the load id.
func NewLoadNumber(id kernel.UUID, postedAt time.Time) string {
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("%s-%s-%s", loadNumberPrefix, postedAt.UTC().Format("060102"), hex[:12])
}

// Validate ensures the Load was built through a constructor.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l *Load) ID() kernel.UUID         { return l.id }
func (l *Load) Number() string          { return l.number }
func (l *Load) ShipperID() kernel.UUID  { return l.shipperID }
func (l *Load) Status() Status          { return l.status }
func (l *Load) Rate() kernel.Money      { return l.rate }
func (l *Load) Details() Details        { return l.details }
func (l *Load) PostedAt() time.Time     { return l.postedAt }
func (l *Load) AssignedAt() *time.Time  { return l.assignedAt }
func (l *Load) PickedUpAt() *time.Time  { return l.pickedUpAt }
func (l *Load) DeliveredAt() *time.Time { return l.deliveredAt }
func (l *Load) Version() int            { return l.version }

// CarrierID returns the bound carrier, nil while the load is posted or cancelled.
func (l *Load) CarrierID() *kernel.UUID {
	return l.carrierID
}

// IsEqual compares loads by id.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// IsOwner reports whether who is the shipper that posted the load.
func (l *Load) IsOwner(who identity.Identity) bool {
	return identity.IsShipper(who) && who.ID().IsEqual(l.shipperID)
}

// IsAssignedCarrier reports whether who is the carrier bound to the load.
func (l *Load) IsAssignedCarrier(who identity.Identity) bool {
	return identity.IsCarrier(who) && l.carrierID != nil && who.ID().IsEqual(*l.carrierID)
}

// CanReceiveOffers checks that carrier may bid on the load now.
func (l *Load) CanReceiveOffers(carrier identity.Carrier) error {
	if l.status != Posted {
		return ErrLoadNotPostable
	}
	if carrier.ID().IsEqual(l.shipperID) {
		return ErrSelfOfferForbidden
	}
	return nil
}

// Assign binds the carrier of an accepted offer and takes over its amount as the rate.
// Only the negotiation path calls it; a load that is not posted fails with ErrLoadAlreadyAssigned.
func (l *Load) Assign(carrierID kernel.UUID, amount kernel.Money, by identity.Shipper, now time.Time) error {
	if err := errors.Join(carrierID.Validate(), amount.Validate()); err != nil {
		return err
	}

	newStatus, err := l.status.Assign()
	if err != nil {
		return err
	}

	from := l.status
	at := now.UTC()
	l.status = newStatus
	l.carrierID = &carrierID
	l.rate = amount
	if l.assignedAt == nil {
		l.assignedAt = &at
	}

	l.recordStatusChange(from, by, at)
	return nil
}

// RequestTransition applies a user requested status change.
//
// Checks run in order: the requested status must be valid (InvalidInput), the pair must
// have a row in the transition table and must not be coordinator-only (IllegalTransition),
// and the actor must be the party the row names (Unauthorized). On failure the load is
// left unchanged.
func (l *Load) RequestTransition(to Status, actor identity.Identity, now time.Time) error {
	party, err := l.status.TransitionTo(to)
	if err != nil {
		return err
	}

	switch party {
	case PartyOwnerShipper:
		if !l.IsOwner(actor) {
			return ErrNotLoadOwner
		}
	case PartyAssignedCarrier:
		if !l.IsAssignedCarrier(actor) {
			return ErrNotAssignedCarrier
		}
	default:
		return errs.NewIllegalTransitionErrorWithCause(l.status.String(), to.String(),
			errors.New("assignment happens only through offer acceptance"))
	}

	from := l.status
	at := now.UTC()
	l.status = to

	switch to {
	case InTransit:
		if l.pickedUpAt == nil {
			l.pickedUpAt = &at
		}
	case Delivered:
		if l.deliveredAt == nil {
			l.deliveredAt = &at
		}
	case Cancelled:
		l.carrierID = nil
	}

	l.recordStatusChange(from, actor, at)
	return nil
}

// Edit changes descriptive fields and rate. Only the owner may edit, and only while no
// carrier is bound and the load is not closed.
func (l *Load) Edit(edits Edits, actor identity.Identity) error {
	if edits.IsEmpty() {
		return ErrNothingToChange
	}
	if !l.IsOwner(actor) {
		return ErrNotLoadOwner
	}
	if l.carrierID != nil {
		return ErrLoadLocked
	}
	if l.status.IsTerminal() {
		return ErrLoadClosed
	}

	details, err := edits.apply(l.details)
	if err != nil {
		return err
	}
	rate := l.rate
	if edits.Rate != nil {
		if err = edits.Rate.Validate(); err != nil {
			return err
		}
		rate = *edits.Rate
	}

	l.details = details
	l.rate = rate
	return nil
}

func (l *Load) recordStatusChange(from Status, actor identity.Identity, at time.Time) {
	var carrierID *kernel.UUID
	if l.carrierID != nil {
		id := *l.carrierID
		carrierID = &id
	}

	l.Record(StatusChangedEvent{
		LoadID:    l.id,
		From:      from,
		To:        l.status,
		CarrierID: carrierID,
		ActorID:   actor.ID(),
		ActorRole: actor.Role(),
		At:        at,
	})
}
