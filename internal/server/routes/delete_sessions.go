package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DeleteSessionHandler removes a session and all of its state
func DeleteSessionHandler(c echo.Context) error {
	if !appState(c).Sessions.Delete(c.Param("id")) {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Session deleted successfully",
	})
}
