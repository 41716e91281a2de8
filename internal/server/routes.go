package server

import (
	"github.com/wavo-hq/onboarding/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Catalog routes
	apiRoutes.GET("/catalog", routes.GetCatalogHandler)

	// Session lifecycle routes
	apiRoutes.POST("/sessions", routes.CreateSessionHandler)
	apiRoutes.GET("/sessions/:id", routes.GetSessionHandler)
	apiRoutes.DELETE("/sessions/:id", routes.DeleteSessionHandler)

	// Wizard form routes
	apiRoutes.PATCH("/sessions/:id/org", routes.PatchOrgHandler)
	apiRoutes.PATCH("/sessions/:id/team", routes.PatchTeamHandler)
	apiRoutes.PATCH("/sessions/:id/user", routes.PatchUserHandler)
	apiRoutes.PATCH("/sessions/:id/connectors", routes.PatchConnectorsHandler)
	apiRoutes.PATCH("/sessions/:id/naming", routes.PatchNamingHandler)

	// Roster routes
	apiRoutes.POST("/sessions/:id/artists", routes.AddArtistHandler)
	apiRoutes.PUT("/sessions/:id/artists", routes.ReplaceArtistsHandler)
	apiRoutes.DELETE("/sessions/:id/artists/:artist_id", routes.DeleteArtistHandler)

	// Semantic layer routes
	apiRoutes.POST("/sessions/:id/glossary", routes.AddGlossaryHandler)

	// Wizard navigation routes
	apiRoutes.POST("/sessions/:id/step", routes.SetStepHandler)
	apiRoutes.POST("/sessions/:id/step/next", routes.NextStepHandler)
	apiRoutes.POST("/sessions/:id/step/prev", routes.PrevStepHandler)

	// Graph routes
	apiRoutes.POST("/sessions/:id/finalize", routes.FinalizeSessionHandler)
	apiRoutes.POST("/sessions/:id/enrich", routes.EnrichSessionHandler)
	apiRoutes.POST("/sessions/:id/research", routes.ResearchSessionHandler)
	apiRoutes.GET("/sessions/:id/evidence", routes.GetEvidenceHandler)
	apiRoutes.GET("/sessions/:id/export", routes.ExportSessionHandler)
	apiRoutes.GET("/sessions/:id/suggestions", routes.GetSuggestionsHandler)

	// Co-Pilot routes
	apiRoutes.GET("/sessions/:id/copilot", routes.GetCopilotHandler)
	apiRoutes.POST("/sessions/:id/copilot", routes.PostCopilotHandler)
}
