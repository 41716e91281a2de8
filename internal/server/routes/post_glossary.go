package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
)

// AddGlossaryHandler appends a glossary entry to the semantic layer
func AddGlossaryHandler(c echo.Context) error {
	type addGlossaryBody struct {
		Key         string `json:"key" validate:"required"`
		Description string `json:"description" validate:"required"`
		Entity      string `json:"entity" validate:"omitempty,oneof=org team user artist ip"`
		Calc        string `json:"calc"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(addGlossaryBody)
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

	item := catalog.GlossaryItem{
		Key:         data.Key,
		Description: data.Description,
		Entity:      data.Entity,
		Calc:        data.Calc,
	}
	if err := s.AddGlossary(item); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Glossary entry added successfully",
	})
}
