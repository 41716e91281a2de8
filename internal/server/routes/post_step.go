package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/session"
)

// SetStepHandler jumps the wizard to an explicit step
func SetStepHandler(c echo.Context) error {
	type setStepBody struct {
		Step string `json:"step" validate:"required"`
	}

	type setStepResponse struct {
		Message string       `json:"message"`
		Session session.View `json:"session,omitempty"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(setStepBody)
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

	if err := s.Goto(session.Step(data.Step)); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, setStepResponse{
		Message: "Step updated successfully",
		Session: s.View(),
	})
}

// NextStepHandler advances the wizard by one step
func NextStepHandler(c echo.Context) error {
	type nextStepResponse struct {
		Message string       `json:"message"`
		Step    session.Step `json:"step"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, nextStepResponse{
		Message: "Step updated successfully",
		Step:    s.Next(),
	})
}

// PrevStepHandler moves the wizard back one step
func PrevStepHandler(c echo.Context) error {
	type prevStepResponse struct {
		Message string       `json:"message"`
		Step    session.Step `json:"step"`
	}

	s, ok := sessionFromParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, prevStepResponse{
		Message: "Step updated successfully",
		Step:    s.Prev(),
	})
}
