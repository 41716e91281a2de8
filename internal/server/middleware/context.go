package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
	"github.com/wavo-hq/onboarding/backend/pkg/copilot"
	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
)

// App bundles the shared application state every handler can reach.
type App struct {
	Sessions *session.Manager
	Copilot  copilot.ChatClient
	Catalog  catalog.Catalog
}

// AppContext wraps the echo context with the application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the application state to every request.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
