package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
)

// GetSessionHandler returns the full state of one session
func GetSessionHandler(c echo.Context) error {
	type getSessionResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, getSessionResponse{
		Message: "OK",
		Session: s.View(),
	})
}

// GetSuggestionsHandler returns the heuristics' current proposals
// without applying them
func GetSuggestionsHandler(c echo.Context) error {
	type getSuggestionsResponse struct {
		Message     string              `json:"message"`
		Suggestions session.Suggestions `json:"suggestions"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, getSuggestionsResponse{
		Message:     "OK",
		Suggestions: s.Suggest(),
	})
}
