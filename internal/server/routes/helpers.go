package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/server/middleware"
	"github.com/wavo-hq/onboarding/backend/internal/session"
)

type messageResponse struct {
	Message string `json:"message"`
}

func appState(c echo.Context) *middleware.App {
	return c.(*middleware.AppContext).App
}

func sessionFromParam(c echo.Context) (*session.Session, bool) {
	return appState(c).Sessions.Get(c.Param("id"))
}
