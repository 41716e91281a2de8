package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/pkg/engine"
)

// AddArtistHandler appends one artist to the session roster
func AddArtistHandler(c echo.Context) error {
	type addArtistBody struct {
		Name string `json:"name" validate:"required"`
	}

	type addArtistResponse struct {
		Message string            `json:"message"`
		Artist  engine.ArtistForm `json:"artist,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(addArtistBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}

	artist, err := s.AddArtist(data.Name)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, addArtistResponse{
		Message: "Artist added successfully",
		Artist:  artist,
	})
}

// ReplaceArtistsHandler swaps the whole roster in one call
func ReplaceArtistsHandler(c echo.Context) error {
	type replaceArtistsBody struct {
		Artists []engine.ArtistForm `json:"artists"`
	}

	type replaceArtistsResponse struct {
		Message string              `json:"message"`
		Artists []engine.ArtistForm `json:"artists"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(replaceArtistsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}

	return c.JSON(http.StatusOK, replaceArtistsResponse{
		Message: "Roster replaced successfully",
		Artists: s.ReplaceArtists(data.Artists),
	})
}
