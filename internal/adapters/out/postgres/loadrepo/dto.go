// Package loadrepo persists load aggregates with GORM.
package loadrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO is the row of the loads table.
type LoadDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LoadNumber  string     `gorm:"column:load_number;uniqueIndex"`
	ShipperID   uuid.UUID  `gorm:"type:uuid;index"`
	CarrierID   *uuid.UUID `gorm:"type:uuid"`
	Status      string
	RateCents   int64
	Details     DetailsDTO `gorm:"embedded"`
	PostedAt    time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Version     int
}

func (LoadDTO) TableName() string {
	return "loads"
}

// DetailsDTO holds the descriptive columns embedded in the loads row.
type DetailsDTO struct {
	Origin      string
	Destination string
	PickupAt    time.Time
	DeliverBy   *time.Time
	WeightLbs   int
	Equipment   string
	Notes       string
}

func fromDomain(l *load.Load) LoadDTO {
	var carrierID *uuid.UUID
	if id := l.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	d := l.Details()
	var deliverBy *time.Time
	if !d.DeliverBy().IsZero() {
		t := d.DeliverBy()
		deliverBy = &t
	}

	return LoadDTO{
		ID:         l.ID().Bytes(),
		LoadNumber: l.Number(),
		ShipperID:  l.ShipperID().Bytes(),
		CarrierID:  carrierID,
		Status:     l.Status().String(),
		RateCents:  l.Rate().Cents(),
		Details: DetailsDTO{
			Origin:      d.Origin(),
			Destination: d.Destination(),
			PickupAt:    d.PickupAt(),
			DeliverBy:   deliverBy,
			WeightLbs:   d.WeightLbs(),
			Equipment:   d.Equipment(),
			Notes:       d.Notes(),
		},
		PostedAt:    l.PostedAt(),
		AssignedAt:  l.AssignedAt(),
		PickedUpAt:  l.PickedUpAt(),
		DeliveredAt: l.DeliveredAt(),
		Version:     l.Version(),
	}
}

// ToDomain rebuilds a load aggregate from its row. Query handlers reuse it.
func ToDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFrom(dto.ShipperID)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFrom(*dto.CarrierID)
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	status, err := load.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.RateCents)
	if err != nil {
		return nil, err
	}

	var deliverBy time.Time
	if dto.Details.DeliverBy != nil {
		deliverBy = *dto.Details.DeliverBy
	}
	details, err := load.NewDetails(
		dto.Details.Origin,
		dto.Details.Destination,
		dto.Details.PickupAt,
		deliverBy,
		dto.Details.WeightLbs,
		dto.Details.Equipment,
		dto.Details.Notes,
	)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(
		id,
		dto.LoadNumber,
		shipperID,
		carrierID,
		status,
		rate,
		details,
		dto.PostedAt,
		utcPtr(dto.AssignedAt),
		utcPtr(dto.PickedUpAt),
		utcPtr(dto.DeliveredAt),
		dto.Version,
	)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
