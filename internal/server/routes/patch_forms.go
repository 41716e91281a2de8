package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
)

// PatchOrgHandler applies a partial organization form update
func PatchOrgHandler(c echo.Context) error {
	type patchOrgResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(session.OrgPatch)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}

	if err := s.PatchOrg(*data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, patchOrgResponse{
		Message: "Organization updated successfully",
		Session: s.View(),
	})
}

// PatchTeamHandler applies a partial team form update
func PatchTeamHandler(c echo.Context) error {
	type patchTeamResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(session.TeamPatch)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}

	if err := s.PatchTeam(*data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, patchTeamResponse{
		Message: "Team updated successfully",
		Session: s.View(),
	})
}

// PatchUserHandler applies a partial user form update
func PatchUserHandler(c echo.Context) error {
	type patchUserResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(session.UserPatch)
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

	if err := s.PatchUser(*data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, patchUserResponse{
		Message: "User updated successfully",
		Session: s.View(),
	})
}

// PatchConnectorsHandler toggles connectors and the deferred flag
func PatchConnectorsHandler(c echo.Context) error {
	type patchConnectorsResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(session.ConnectorPatch)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}

	if err := s.PatchConnectors(*data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, patchConnectorsResponse{
		Message: "Connectors updated successfully",
		Session: s.View(),
	})
}

// PatchNamingHandler applies naming-convention overrides
func PatchNamingHandler(c echo.Context) error {
	type patchNamingResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(session.NamingPatch)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body",
		})
	}

	if err := s.PatchNaming(*data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, patchNamingResponse{
		Message: "Naming conventions updated successfully",
		Session: s.View(),
	})
}
