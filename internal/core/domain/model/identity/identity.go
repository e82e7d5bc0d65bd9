package identity

import (
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Role names a participant kind. The string values are used on the wire and in storage.
type Role string

const (
	RoleShipper Role = "shipper"
	RoleCarrier Role = "carrier"
	RoleAdmin   Role = "admin"
)

// Validate rejects unknown role names.
func (r Role) Validate() error {
	switch r {
	case RoleShipper, RoleCarrier, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// Identity is the authenticated caller.
type Identity interface {
	ID() kernel.UUID
	Role() Role
	Validate() error

	isIdentity()
}

// Shipper posts loads and resolves offers on the loads it owns.
type Shipper struct {
	id          kernel.UUID
	companyName string
}

// NewShipper requires a valid id and a non-blank company name.
func NewShipper(id kernel.UUID, companyName string) (Shipper, error) {
	s := Shipper{id: id, companyName: strings.TrimSpace(companyName)}
	if err := s.Validate(); err != nil {
		return Shipper{}, err
	}
	return s, nil
}

func (s Shipper) ID() kernel.UUID     { return s.id }
func (s Shipper) Role() Role          { return RoleShipper }
func (s Shipper) CompanyName() string { return s.companyName }
func (s Shipper) isIdentity()         {}

func (s Shipper) Validate() error {
	if err := s.id.Validate(); err != nil {
		return err
	}
	if s.companyName == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	return nil
}

// Carrier submits offers and drives the load once assigned.
type Carrier struct {
	id          kernel.UUID
	companyName string
	mcNumber    string
}

// NewCarrier requires a valid id, company name and MC (motor carrier) number.
func NewCarrier(id kernel.UUID, companyName, mcNumber string) (Carrier, error) {
	c := Carrier{
		id:          id,
		companyName: strings.TrimSpace(companyName),
		mcNumber:    strings.TrimSpace(mcNumber),
	}
	if err := c.Validate(); err != nil {
		return Carrier{}, err
	}
	return c, nil
}

func (c Carrier) ID() kernel.UUID     { return c.id }
func (c Carrier) Role() Role          { return RoleCarrier }
func (c Carrier) CompanyName() string { return c.companyName }
func (c Carrier) MCNumber() string    { return c.mcNumber }
func (c Carrier) isIdentity()         {}

func (c Carrier) Validate() error {
	if err := c.id.Validate(); err != nil {
		return err
	}
	if c.companyName == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	if c.mcNumber == "" {
		return errs.NewValueIsRequiredError("mc number")
	}
	return nil
}

// Admin can read offers and chats of any load. It has no transition powers.
type Admin struct {
	id kernel.UUID
}

func NewAdmin(id kernel.UUID) (Admin, error) {
	a := Admin{id: id}
	if err := a.Validate(); err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (a Admin) ID() kernel.UUID { return a.id }
func (a Admin) Role() Role      { return RoleAdmin }
func (a Admin) isIdentity()     {}
func (a Admin) Validate() error { return a.id.Validate() }

// Parse builds the variant named by role from flat claims.
func Parse(role string, id kernel.UUID, companyName, mcNumber string) (Identity, error) {
	r := Role(strings.ToLower(strings.TrimSpace(role)))
	if err := r.Validate(); err != nil {
		return nil, err
	}

	switch r {
	case RoleShipper:
		return NewShipper(id, companyName)
	case RoleCarrier:
		return NewCarrier(id, companyName, mcNumber)
	default:
		return NewAdmin(id)
	}
}

// AsShipper returns the shipper payload or an Unauthorized error.
func AsShipper(who Identity) (Shipper, error) {
	if s, ok := who.(Shipper); ok {
		return s, nil
	}
	return Shipper{}, errs.NewUnauthorizedError("shipper role required")
}

// AsCarrier returns the carrier payload or an Unauthorized error.
func AsCarrier(who Identity) (Carrier, error) {
	if c, ok := who.(Carrier); ok {
		return c, nil
	}
	return Carrier{}, errs.NewUnauthorizedError("carrier role required")
}

func IsShipper(who Identity) bool {
	_, ok := who.(Shipper)
	return ok
}

func IsCarrier(who Identity) bool {
	_, ok := who.(Carrier)
	return ok
}

func IsAdmin(who Identity) bool {
	_, ok := who.(Admin)
	return ok
}
