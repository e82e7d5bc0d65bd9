package commands

import (
	"errors"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRequestLoadTransitionCommandIsNotConstructed = errors.New(
	"RequestLoadTransitionCommand must be created via NewRequestLoadTransitionCommand constructor",
)

// RequestLoadTransitionCommand asks for a status change, a field edit, or both on one load.
type RequestLoadTransitionCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  identity.Identity
	status *load.Status
	edits  load.Edits

	guard guard.ConstructorGuard
}

// NewRequestLoadTransitionCommand requires a requested status, at least one edit, or both.
// A requested status must be a known one.
func NewRequestLoadTransitionCommand(
	loadID kernel.UUID,
	actor identity.Identity,
	status *load.Status,
	edits load.Edits,
) (RequestLoadTransitionCommand, error) {
	var statusErr error
	switch {
	case status == nil && edits.IsEmpty():
		statusErr = errs.NewValueIsRequiredError("status or edits")
	case status != nil:
		statusErr = status.Validate()
	}

	if err := errors.Join(
		loadID.Validate(),
		validateActor(actor),
		statusErr,
	); err != nil {
		return RequestLoadTransitionCommand{}, err
	}

	cmd := RequestLoadTransitionCommand{
		loadID: loadID,
		actor:  actor,
		edits:  edits,
		guard:  guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		cmd.status = &s
	}
	return cmd, nil
}

func (c RequestLoadTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestLoadTransitionCommandIsNotConstructed)
}

func (c RequestLoadTransitionCommand) LoadID() kernel.UUID      { return c.loadID }
func (c RequestLoadTransitionCommand) Actor() identity.Identity { return c.actor }
func (c RequestLoadTransitionCommand) Edits() load.Edits        { return c.edits }

// Status returns the requested status and whether one was requested.
func (c RequestLoadTransitionCommand) Status() (load.Status, bool) {
	if c.status == nil {
		return load.Unknown, false
	}
	return *c.status, true
}
