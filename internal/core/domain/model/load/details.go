package load

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const (
	maxPlaceLength     = 200
	maxEquipmentLength = 100
	maxNotesLength     = 2000
	// maxWeightLbs is a full truckload under US federal gross weight limits.
	maxWeightLbs = 80000
)

// Details is the descriptive part of a load: where, when and what.
// It is a value object; edits produce a new Details.
type Details struct {
	origin      string
	destination string
	pickupAt    time.Time
	deliverBy   time.Time
	weightLbs   int
	equipment   string
	notes       string
}

// NewDetails validates and builds load details. Origin, destination and pickup time are
// required; deliverBy, when set, must not precede pickupAt.
func NewDetails(
	origin, destination string,
	pickupAt, deliverBy time.Time,
	weightLbs int,
	equipment, notes string,
) (Details, error) {
	d := Details{
		origin:      strings.TrimSpace(origin),
		destination: strings.TrimSpace(destination),
		pickupAt:    pickupAt.UTC(),
		deliverBy:   deliverBy.UTC(),
		weightLbs:   weightLbs,
		equipment:   strings.TrimSpace(equipment),
		notes:       strings.TrimSpace(notes),
	}
	if err := d.Validate(); err != nil {
		return Details{}, err
	}
	return d, nil
}

// Validate checks every field rule.
func (d Details) Validate() error {
	switch {
	case d.origin == "":
		return errs.NewValueIsRequiredError("origin")
	case d.destination == "":
		return errs.NewValueIsRequiredError("destination")
	case utf8.RuneCountInString(d.origin) > maxPlaceLength:
		return errs.NewValueIsOutOfRangeError("origin length", utf8.RuneCountInString(d.origin), 1, maxPlaceLength)
	case utf8.RuneCountInString(d.destination) > maxPlaceLength:
		return errs.NewValueIsOutOfRangeError("destination length", utf8.RuneCountInString(d.destination), 1, maxPlaceLength)
	case d.pickupAt.IsZero():
		return errs.NewValueIsRequiredError("pickup time")
	case !d.deliverBy.IsZero() && d.deliverBy.Before(d.pickupAt):
		return errs.NewValueIsInvalidErrorWithCause("deliver by is invalid",
			fmt.Errorf("%s is before pickup time %s", d.deliverBy.Format(time.RFC3339), d.pickupAt.Format(time.RFC3339)))
	case d.weightLbs < 0 || d.weightLbs > maxWeightLbs:
		return errs.NewValueIsOutOfRangeError("weight", d.weightLbs, 0, maxWeightLbs)
	case utf8.RuneCountInString(d.equipment) > maxEquipmentLength:
		return errs.NewValueIsOutOfRangeError("equipment length", utf8.RuneCountInString(d.equipment), 0, maxEquipmentLength)
	case utf8.RuneCountInString(d.notes) > maxNotesLength:
		return errs.NewValueIsOutOfRangeError("notes length", utf8.RuneCountInString(d.notes), 0, maxNotesLength)
	}
	return nil
}

func (d Details) Origin() string       { return d.origin }
func (d Details) Destination() string  { return d.destination }
func (d Details) PickupAt() time.Time  { return d.pickupAt }
func (d Details) DeliverBy() time.Time { return d.deliverBy }
func (d Details) WeightLbs() int       { return d.weightLbs }
func (d Details) Equipment() string    { return d.equipment }
func (d Details) Notes() string        { return d.notes }

// Edits is a partial update of a load's descriptive fields and rate.
// Nil fields are left unchanged.
type Edits struct {
	Origin      *string
	Destination *string
	PickupAt    *time.Time
	DeliverBy   *time.Time
	WeightLbs   *int
	Equipment   *string
	Notes       *string
	Rate        *kernel.Money
}

// IsEmpty reports whether no field is set.
func (e Edits) IsEmpty() bool {
	return e.Origin == nil && e.Destination == nil && e.PickupAt == nil && e.DeliverBy == nil &&
		e.WeightLbs == nil && e.Equipment == nil && e.Notes == nil && e.Rate == nil
}

// apply returns d with the descriptive edits merged in and validated.
func (e Edits) apply(d Details) (Details, error) {
	origin, destination := d.origin, d.destination
	pickupAt, deliverBy := d.pickupAt, d.deliverBy
	weight, equipment, notes := d.weightLbs, d.equipment, d.notes

	if e.Origin != nil {
		origin = *e.Origin
	}
	if e.Destination != nil {
		destination = *e.Destination
	}
	if e.PickupAt != nil {
		pickupAt = *e.PickupAt
	}
	if e.DeliverBy != nil {
		deliverBy = *e.DeliverBy
	}
	if e.WeightLbs != nil {
		weight = *e.WeightLbs
	}
	if e.Equipment != nil {
		equipment = *e.Equipment
	}
	if e.Notes != nil {
		notes = *e.Notes
	}

	return NewDetails(origin, destination, pickupAt, deliverBy, weight, equipment, notes)
}
