package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"

	"github.com/labstack/echo/v4"
)

// CreateOffer handles POST /api/v1/loads/{loadId}/offers. Resubmitting from the same
// carrier overwrites the earlier bid, so the response is 200 either way.
func (s *Server) CreateOffer(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	loadID, err := pathUUID(c, "loadId")
	if err != nil {
		return badRequest(c, "invalid loadId")
	}

	var req NewOfferRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	amount, err := kernel.NewMoney(req.AmountCents)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSubmitOfferCommand(kernel.NewUUID(), loadID, who, amount, req.Message)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.SubmitOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOffer(o))
}

// ListOffers handles GET /api/v1/loads/{loadId}/offers.
func (s *Server) ListOffers(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	loadID, err := pathUUID(c, "loadId")
	if err != nil {
		return badRequest(c, "invalid loadId")
	}

	query, err := queries.NewListOffersQuery(loadID, who)
	if err != nil {
		return s.fail(c, err)
	}

	offers, err := s.handlers.ListOffers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Offer, len(offers))
	for i, o := range offers {
		response[i] = toListedOffer(o)
	}
	return c.JSON(http.StatusOK, response)
}

// ResolveOffer handles POST /api/v1/offers/{offerId}/resolution.
func (s *Server) ResolveOffer(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	offerID, err := pathUUID(c, "offerId")
	if err != nil {
		return badRequest(c, "invalid offerId")
	}

	var req ResolutionRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	decision, err := offer.ParseStatus(req.Decision)
	if err != nil {
		return s.fail(c, offer.ErrInvalidDecision)
	}

	cmd, err := commands.NewResolveOfferCommand(offerID, decision, who)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.ResolveOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOffer(o))
}
