package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/pkg/engine"
)

// GetEvidenceHandler returns the append-only evidence log. The order
// query parameter accepts asc (default) or desc.
func GetEvidenceHandler(c echo.Context) error {
	type getEvidenceResponse struct {
		Message  string            `json:"message"`
		Evidence []engine.Evidence `json:"evidence"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	order := c.QueryParam("order")
	if order != "" && order != "asc" && order != "desc" {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid order parameter",
		})
	}

	return c.JSON(http.StatusOK, getEvidenceResponse{
		Message:  "OK",
		Evidence: s.Evidence(order == "desc"),
	})
}
