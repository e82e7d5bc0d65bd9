package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetChatMessages handles GET /api/v1/loads/{loadId}/messages. The optional since
// parameter returns only messages created after it.
func (s *Server) GetChatMessages(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	loadID, err := pathUUID(c, "loadId")
	if err != nil {
		return badRequest(c, "invalid loadId")
	}

	var since *time.Time
	if err = runtime.BindQueryParameter("form", true, false, "since", c.QueryParams(), &since); err != nil {
		return badRequest(c, "invalid since")
	}

	query, err := queries.NewGetChatMessagesQuery(loadID, who, since)
	if err != nil {
		return s.fail(c, err)
	}

	messages, err := s.handlers.GetChatMessages.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Message, len(messages))
	for i, m := range messages {
		response[i] = Message{
			ID:         m.ID.Bytes(),
			LoadID:     loadID.Bytes(),
			SenderID:   m.SenderID.Bytes(),
			SenderRole: string(m.SenderRole),
			Text:       m.Text,
			CreatedAt:  m.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// PostChatMessage handles POST /api/v1/loads/{loadId}/messages.
func (s *Server) PostChatMessage(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return unauthenticated(c)
	}

	loadID, err := pathUUID(c, "loadId")
	if err != nil {
		return badRequest(c, "invalid loadId")
	}

	var req NewMessageRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewPostChatMessageCommand(kernel.NewUUID(), loadID, who, req.Text)
	if err != nil {
		return s.fail(c, err)
	}

	m, err := s.handlers.PostChatMessage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toMessage(m))
}
