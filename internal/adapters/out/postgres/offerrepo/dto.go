// Package offerrepo persists offers with GORM.
package offerrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO is the row of the offers table. (load_id, carrier_id) is unique.
type OfferDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID          uuid.UUID `gorm:"type:uuid;uniqueIndex:offers_load_id_carrier_id_key"`
	CarrierID       uuid.UUID `gorm:"type:uuid;uniqueIndex:offers_load_id_carrier_id_key"`
	CarrierCompany  string
	CarrierMCNumber string `gorm:"column:carrier_mc_number"`
	AmountCents     int64
	Message         string
	Status          string
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(o *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:              o.ID().Bytes(),
		LoadID:          o.LoadID().Bytes(),
		CarrierID:       o.CarrierID().Bytes(),
		CarrierCompany:  o.CarrierCompany(),
		CarrierMCNumber: o.CarrierMCNumber(),
		AmountCents:     o.Amount().Cents(),
		Message:         o.Message(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// ToDomain rebuilds an offer from its row. Query handlers reuse it.
func ToDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFrom(dto.LoadID)
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFrom(dto.CarrierID)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}
	status, err := offer.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(
		id, loadID, carrierID,
		dto.CarrierCompany, dto.CarrierMCNumber,
		amount, dto.Message, status,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
