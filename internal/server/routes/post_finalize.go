package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
)

// FinalizeSessionHandler materializes the forms into the context graph
// and captures the seed memory snapshot
func FinalizeSessionHandler(c echo.Context) error {
	type finalizeResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	if err := s.Finalize(); err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Failed to finalize session",
		})
	}

	return c.JSON(http.StatusOK, finalizeResponse{
		Message: "Session finalized successfully",
		Session: s.View(),
	})
}
