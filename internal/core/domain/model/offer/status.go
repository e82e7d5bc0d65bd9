package offer

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the resolution state of an offer.
//
//	pending ──> accepted
//	   │
//	   └─────> rejected ──(resubmitted)──> pending
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
	}
}

// ParseStatus maps a wire/storage name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid offer status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Resolve transitions a pending offer to the decision. Only Accepted and Rejected are decisions.
func (s Status) Resolve(decision Status) (Status, error) {
	if decision != Accepted && decision != Rejected {
		return Unknown, ErrInvalidDecision
	}
	if s != Pending {
		return Unknown, ErrOfferNotPending
	}
	return decision, nil
}
