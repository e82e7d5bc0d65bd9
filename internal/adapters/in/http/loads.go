package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	var req NewLoadRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var deliverBy time.Time
	if req.DeliverBy != nil {
		deliverBy = *req.DeliverBy
	}
	details, err := load.NewDetails(req.Origin, req.Destination, req.PickupAt, deliverBy,
		req.WeightLbs, req.Equipment, req.Notes)
	if err != nil {
		return s.fail(c, err)
	}
	rate, err := kernel.NewMoney(req.RateCents)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), who, details, rate)
	if err != nil {
		return s.fail(c, err)
	}

	l, err := s.handlers.CreateLoad.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toLoad(queries.NewGetLoadQueryResponse(l)))
}

// ListPostedLoads handles GET /api/v1/loads.
func (s *Server) ListPostedLoads(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	var limit *int
	if err = runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return badRequest(c, "invalid limit")
	}

	n := 0
	if limit != nil {
		n = *limit
	}
	query, err := queries.NewListPostedLoadsQuery(who, n)
	if err != nil {
		return s.fail(c, err)
	}

	board, err := s.handlers.ListPostedLoads.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]BoardLoad, len(board))
	for i, l := range board {
		response[i] = toBoardLoad(l)
	}
	return c.JSON(http.StatusOK, response)
}

// GetLoad handles GET /api/v1/loads/{loadId}.
func (s *Server) GetLoad(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	loadID, err := pathUUID(c, "loadId")
	if err != nil {
		return badRequest(c, "invalid loadId")
	}

	query, err := queries.NewGetLoadQuery(loadID, who)
	if err != nil {
		return s.fail(c, err)
	}

	l, err := s.handlers.GetLoad.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toLoad(l))
}

// RequestLoadTransition handles PATCH /api/v1/loads/{loadId}.
func (s *Server) RequestLoadTransition(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	loadID, err := pathUUID(c, "loadId")
	if err != nil {
		return badRequest(c, "invalid loadId")
	}

	var req LoadPatchRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var status *load.Status
	if req.Status != nil {
		parsed, parseErr := load.ParseStatus(*req.Status)
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		status = &parsed
	}

	edits, err := toEdits(req.Edits)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRequestLoadTransitionCommand(loadID, who, status, edits)
	if err != nil {
		return s.fail(c, err)
	}

	l, err := s.handlers.RequestLoadTransition.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toLoad(queries.NewGetLoadQueryResponse(l)))
}

func toEdits(req *LoadEditsRequest) (load.Edits, error) {
	if req == nil {
		return load.Edits{}, nil
	}

	edits := load.Edits{
		Origin:      req.Origin,
		Destination: req.Destination,
		PickupAt:    req.PickupAt,
		DeliverBy:   req.DeliverBy,
		WeightLbs:   req.WeightLbs,
		Equipment:   req.Equipment,
		Notes:       req.Notes,
	}
	if req.RateCents != nil {
		rate, err := kernel.NewMoney(*req.RateCents)
		if err != nil {
			return load.Edits{}, err
		}
		edits.Rate = &rate
	}
	return edits, nil
}
