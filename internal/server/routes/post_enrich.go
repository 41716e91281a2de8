package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
	"github.com/wavo-hq/onboarding/backend/pkg/engine"
)

// EnrichSessionHandler runs one enrichment tick on demand
func EnrichSessionHandler(c echo.Context) error {
	type enrichResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	s.Enrich()

	return c.JSON(http.StatusOK, enrichResponse{
		Message: "Enrichment tick applied successfully",
		Session: s.View(),
	})
}

// ResearchSessionHandler runs a simulated deep-research pass
func ResearchSessionHandler(c echo.Context) error {
	type researchResponse struct {
		Message  string          `json:"message"`
		Evidence engine.Evidence `json:"evidence"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, researchResponse{
		Message:  "Research completed successfully",
		Evidence: s.Research(),
	})
}
