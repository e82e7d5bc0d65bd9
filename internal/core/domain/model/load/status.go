package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a load.
//
//	posted ──(offer accepted)──> assigned ──> in_transit ──> delivered_pending ──> delivered
//	                                              ^                  │
//	                                              └──(claim rejected)┘
//
// The owner shipper may cancel from any status before delivered.
// delivered and cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Posted loads are visible on the board and accept offers.
	Posted

	// Assigned loads have a carrier bound by an accepted offer.
	Assigned

	// InTransit loads were picked up by the assigned carrier.
	InTransit

	// DeliveredPending loads are claimed delivered by the carrier and await shipper confirmation.
	DeliveredPending

	// Delivered is terminal and set only by the owner shipper.
	Delivered

	// Cancelled is terminal and set only by the owner shipper.
	Cancelled
)

// Party names who may drive a transition.
type Party int

const (
	PartyNone Party = iota
	// PartyCoordinator is the offer resolution path; users cannot request these transitions.
	PartyCoordinator
	PartyOwnerShipper
	PartyAssignedCarrier
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Posted:           "posted",
		Assigned:         "assigned",
		InTransit:        "in_transit",
		DeliveredPending: "delivered_pending",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:           "posted",
		Assigned:         "assigned",
		InTransit:        "in_transit",
		DeliveredPending: "delivered_pending",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
	}
}

// getTransitions is the transition table: from -> to -> party allowed to request it.
func getTransitions() map[Status]map[Status]Party {
	return map[Status]map[Status]Party{
		Posted: {
			Assigned:  PartyCoordinator,
			Cancelled: PartyOwnerShipper,
		},
		Assigned: {
			InTransit: PartyAssignedCarrier,
			Cancelled: PartyOwnerShipper,
		},
		InTransit: {
			DeliveredPending: PartyAssignedCarrier,
			Cancelled:        PartyOwnerShipper,
		},
		DeliveredPending: {
			Delivered: PartyOwnerShipper,
			InTransit: PartyOwnerShipper,
			Cancelled: PartyOwnerShipper,
		},
	}
}

// ParseStatus maps a wire/storage name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// RequiresCarrier reports whether a load in s must have a bound carrier.
func (s Status) RequiresCarrier() bool {
	return s == Assigned || s == InTransit || s == DeliveredPending || s == Delivered
}

// ValidateCanHaveCarrier checks the carrier/status invariant:
// a carrier is bound iff the status is assigned, in_transit, delivered_pending or delivered.
func (s Status) ValidateCanHaveCarrier(carrier bool) error {
	if carrier && !s.RequiresCarrier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a carrier", s.String()),
		)
	}

	if !carrier && s.RequiresCarrier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no carrier", s.String()),
		)
	}

	return nil
}

// TransitionTo looks the pair (s, to) up in the transition table and returns
// the party allowed to request it. Pairs without a row fail with IllegalTransition.
func (s Status) TransitionTo(to Status) (Party, error) {
	if err := to.Validate(); err != nil {
		return PartyNone, err
	}

	party, ok := getTransitions()[s][to]
	if !ok {
		return PartyNone, errs.NewIllegalTransitionError(s.String(), to.String())
	}
	return party, nil
}

// ValidateAssign checks that a load in s can be bound to a carrier.
func (s Status) ValidateAssign() error {
	if s != Posted {
		return ErrLoadAlreadyAssigned
	}
	return nil
}

// Assign transitions the status to Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}
