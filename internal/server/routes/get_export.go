package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ExportSessionHandler serves the seed document as a JSON download
func ExportSessionHandler(c echo.Context) error {
	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Failed to serialize seed document",
		})
	}

	filename := fmt.Sprintf("wavo-seed-%s.json", s.ID())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
