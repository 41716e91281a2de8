package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetCopilotHandler returns the scripted guidance for the current step
func GetCopilotHandler(c echo.Context) error {
	type getCopilotResponse struct {
		Message  string `json:"message"`
		Guidance string `json:"guidance"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, getCopilotResponse{
		Message:  "OK",
		Guidance: s.Guidance(),
	})
}
