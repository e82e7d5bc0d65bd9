package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/model/offer"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type NewLoadRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	PickupAt    time.Time  `json:"pickupAt"`
	DeliverBy   *time.Time `json:"deliverBy,omitempty"`
	WeightLbs   int        `json:"weightLbs"`
	Equipment   string     `json:"equipment"`
	Notes       string     `json:"notes"`
	RateCents   int64      `json:"rateCents"`
}

type LoadEditsRequest struct {
	Origin      *string    `json:"origin,omitempty"`
	Destination *string    `json:"destination,omitempty"`
	PickupAt    *time.Time `json:"pickupAt,omitempty"`
	DeliverBy   *time.Time `json:"deliverBy,omitempty"`
	WeightLbs   *int       `json:"weightLbs,omitempty"`
	Equipment   *string    `json:"equipment,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	RateCents   *int64     `json:"rateCents,omitempty"`
}

type LoadPatchRequest struct {
	Status *string           `json:"status,omitempty"`
	Edits  *LoadEditsRequest `json:"edits,omitempty"`
}

type NewOfferRequest struct {
	AmountCents int64  `json:"amountCents"`
	Message     string `json:"message"`
}

type ResolutionRequest struct {
	Decision string `json:"decision"`
}

type NewMessageRequest struct {
	Text string `json:"text"`
}

type Load struct {
	ID          openapi_types.UUID  `json:"id"`
	Number      string              `json:"number"`
	ShipperID   openapi_types.UUID  `json:"shipperId"`
	CarrierID   *openapi_types.UUID `json:"carrierId,omitempty"`
	Status      string              `json:"status"`
	RateCents   int64               `json:"rateCents"`
	Origin      string              `json:"origin"`
	Destination string              `json:"destination"`
	PickupAt    time.Time           `json:"pickupAt"`
	DeliverBy   *time.Time          `json:"deliverBy,omitempty"`
	WeightLbs   int                 `json:"weightLbs"`
	Equipment   string              `json:"equipment"`
	Notes       string              `json:"notes"`
	PostedAt    time.Time           `json:"postedAt"`
	AssignedAt  *time.Time          `json:"assignedAt,omitempty"`
	PickedUpAt  *time.Time          `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time          `json:"deliveredAt,omitempty"`
}

type BoardLoad struct {
	ID          openapi_types.UUID `json:"id"`
	Number      string             `json:"number"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	PickupAt    time.Time          `json:"pickupAt"`
	DeliverBy   *time.Time         `json:"deliverBy,omitempty"`
	WeightLbs   int                `json:"weightLbs"`
	Equipment   string             `json:"equipment"`
	RateCents   int64              `json:"rateCents"`
	PostedAt    time.Time          `json:"postedAt"`
}

type Offer struct {
	ID              openapi_types.UUID `json:"id"`
	LoadID          openapi_types.UUID `json:"loadId"`
	CarrierID       openapi_types.UUID `json:"carrierId"`
	CarrierCompany  string             `json:"carrierCompany"`
	CarrierMCNumber string             `json:"carrierMcNumber"`
	AmountCents     int64              `json:"amountCents"`
	Message         string             `json:"message"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type Message struct {
	ID         openapi_types.UUID `json:"id"`
	LoadID     openapi_types.UUID `json:"loadId"`
	SenderID   openapi_types.UUID `json:"senderId"`
	SenderRole string             `json:"senderRole"`
	Text       string             `json:"text"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func toLoad(l queries.GetLoadQueryResponse) Load {
	resp := Load{
		ID:          l.ID.Bytes(),
		Number:      l.Number,
		ShipperID:   l.ShipperID.Bytes(),
		Status:      l.Status.String(),
		RateCents:   l.Rate.Cents(),
		Origin:      l.Origin,
		Destination: l.Destination,
		PickupAt:    l.PickupAt,
		DeliverBy:   l.DeliverBy,
		WeightLbs:   l.WeightLbs,
		Equipment:   l.Equipment,
		Notes:       l.Notes,
		PostedAt:    l.PostedAt,
		AssignedAt:  l.AssignedAt,
		PickedUpAt:  l.PickedUpAt,
		DeliveredAt: l.DeliveredAt,
	}
	if l.CarrierID != nil {
		carrierID := l.CarrierID.Bytes()
		resp.CarrierID = &carrierID
	}
	return resp
}

func toBoardLoad(l queries.ListPostedLoadsQueryResponse) BoardLoad {
	return BoardLoad{
		ID:          l.ID.Bytes(),
		Number:      l.Number,
		Origin:      l.Origin,
		Destination: l.Destination,
		PickupAt:    l.PickupAt,
		DeliverBy:   l.DeliverBy,
		WeightLbs:   l.WeightLbs,
		Equipment:   l.Equipment,
		RateCents:   l.Rate.Cents(),
		PostedAt:    l.PostedAt,
	}
}

func toOffer(o *offer.Offer) Offer {
	return Offer{
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

func toListedOffer(o queries.ListOffersQueryResponse) Offer {
	return Offer{
		ID:              o.ID.Bytes(),
		LoadID:          o.LoadID.Bytes(),
		CarrierID:       o.CarrierID.Bytes(),
		CarrierCompany:  o.CarrierCompany,
		CarrierMCNumber: o.CarrierMCNumber,
		AmountCents:     o.Amount.Cents(),
		Message:         o.Message,
		Status:          o.Status.String(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toMessage(m *chat.Message) Message {
	return Message{
		ID:         m.ID().Bytes(),
		LoadID:     m.LoadID().Bytes(),
		SenderID:   m.SenderID().Bytes(),
		SenderRole: string(m.SenderRole()),
		Text:       m.Text(),
		CreatedAt:  m.CreatedAt(),
	}
}
