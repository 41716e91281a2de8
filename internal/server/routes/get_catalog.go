package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
)

// GetCatalogHandler returns the connector catalog and the fixed form
// vocabularies the wizard selects from
func GetCatalogHandler(c echo.Context) error {
	type getCatalogResponse struct {
		Message     string                 `json:"message"`
		Connectors  []catalog.Connector    `json:"connectors"`
		Licenses    []string               `json:"licenses"`
		Domains     []string               `json:"domains"`
		Departments []string               `json:"departments"`
		Glossary    []catalog.GlossaryItem `json:"glossary"`
	}

	return c.JSON(http.StatusOK, getCatalogResponse{
		Message:     "OK",
		Connectors:  appState(c).Catalog.Connectors,
		Licenses:    catalog.Licenses,
		Domains:     catalog.Domains,
		Departments: catalog.Departments,
		Glossary:    catalog.DefaultGlossary(),
	})
}
