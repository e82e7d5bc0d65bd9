package http

import (
	"errors"
	"net/http"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every rejected request. Code names the violated rule
// so clients can tell a lost race from a policy violation.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type rule struct {
	err  error
	code string
}

// rules lists the specific domain errors and their codes. Order matters only in that
// they are checked before the broad kinds in kinds.
var rules = []rule{
	{load.ErrLoadAlreadyAssigned, "load_already_assigned"},
	{load.ErrLoadStateChanged, "load_state_changed"},
	{offer.ErrDuplicateOffer, "duplicate_offer"},
	{load.ErrLoadNotPostable, "load_not_postable"},
	{load.ErrLoadLocked, "load_locked"},
	{load.ErrLoadClosed, "load_closed"},
	{offer.ErrOfferNotPending, "offer_not_pending"},
	{services.ErrChatClosed, "chat_closed"},
	{load.ErrSelfOfferForbidden, "self_offer_forbidden"},
	{load.ErrNotLoadOwner, "not_load_owner"},
	{load.ErrNotAssignedCarrier, "not_assigned_carrier"},
	{services.ErrNotChatParticipant, "not_chat_participant"},
	{offer.ErrInvalidDecision, "invalid_decision"},
}

type kind struct {
	err    error
	status int
	code   string
}

var kinds = []kind{
	{errs.ErrObjectNotFound, http.StatusNotFound, "not_found"},
	{errs.ErrValueIsRequired, http.StatusBadRequest, "invalid_input"},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, "invalid_input"},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, "invalid_input"},
	{errs.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
	{errs.ErrIllegalTransition, http.StatusUnprocessableEntity, "illegal_transition"},
	{errs.ErrConflict, http.StatusConflict, "conflict"},
	{errs.ErrVersionIsInvalid, http.StatusConflict, "conflict"},
	{errs.ErrPreconditionFailed, http.StatusPreconditionFailed, "precondition_failed"},
}

// classify returns the status and body for err. Unknown errors yield 500 and false.
func classify(err error) (int, ErrorResponse, bool) {
	for _, k := range kinds {
		if !errors.Is(err, k.err) {
			continue
		}
		code := k.code
		for _, r := range rules {
			if errors.Is(err, r.err) {
				code = r.code
				break
			}
		}
		return k.status, ErrorResponse{Code: code, Message: err.Error()}, true
	}
	return http.StatusInternalServerError, ErrorResponse{Code: "internal", Message: "internal error"}, false
}

// fail writes err to the client. Errors outside the taxonomy are logged with the
// request and reported without details.
func (s *Server) fail(c echo.Context, err error) error {
	status, body, known := classify(err)
	if !known {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
	}
	return c.JSON(status, body)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_request", Message: message})
}
