package routes

import (
	"context"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/wavo-hq/onboarding/backend/internal/util"
	"github.com/wavo-hq/onboarding/backend/pkg/copilot"
)

// PostCopilotHandler answers a chat turn. With an LLM adapter
// configured the conversation goes to the model, retried on transient
// failures; otherwise the deterministic echo reply is used.
func PostCopilotHandler(c echo.Context) error {
	type copilotBody struct {
		Messages []copilot.Message `json:"messages" validate:"required,min=1,dive"`
	}

	type copilotResponse struct {
		Message string `json:"message"`
		Reply   string `json:"reply,omitempty"`
	}

	if _, ok := sessionFromParam(c); !ok {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: "Session not found",
		})
	}

	data := new(copilotBody)
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

	chat := appState(c).Copilot
	if chat == nil {
		return c.JSON(http.StatusOK, copilotResponse{
			Message: "OK",
			Reply:   copilot.EchoReply(data.Messages),
		})
	}

	reply, err := util.RetryWithContext(c.Request().Context(), 3, func(ctx context.Context) (string, error) {
		return chat.Reply(ctx, data.Messages)
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, messageResponse{
			Message: "Co-Pilot is unavailable",
		})
	}

	return c.JSON(http.StatusOK, copilotResponse{
		Message: "OK",
		Reply:   reply,
	})
}
