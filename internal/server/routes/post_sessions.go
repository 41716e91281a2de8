package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
	"github.com/wavo-hq/onboarding/backend/pkg/copilot"
)

// CreateSessionHandler starts a new onboarding session
func CreateSessionHandler(c echo.Context) error {
	type createSessionResponse struct {
		Message string       `json:"message"`
		Welcome string       `json:"welcome"`
		Session session.View `json:"session"`
	}

	s := appState(c).Sessions.Create()

	return c.JSON(http.StatusCreated, createSessionResponse{
		Message: "Session created successfully",
		Welcome: copilot.Welcome,
		Session: s.View(),
	})
}
