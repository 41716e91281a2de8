package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DeleteArtistHandler removes one roster entry by id
func DeleteArtistHandler(c echo.Context) error {
	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	if err := s.RemoveArtist(c.Param("artist_id")); err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Artist removed successfully",
	})
}
