package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/wavo-hq/onboarding/backend/internal/server/middleware"
	"github.com/wavo-hq/onboarding/backend/internal/session"
	"github.com/wavo-hq/onboarding/backend/internal/util"
	"github.com/wavo-hq/onboarding/backend/pkg/copilot"
	olm "github.com/wavo-hq/onboarding/backend/pkg/copilot/ollama"
	oai "github.com/wavo-hq/onboarding/backend/pkg/copilot/openai"
	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
	"github.com/wavo-hq/onboarding/backend/pkg/logger"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// newChatClient picks the Co-Pilot backend from COPILOT_ADAPTER. A nil
// client means the deterministic echo reply is used.
func newChatClient() copilot.ChatClient {
	switch util.GetEnv("COPILOT_ADAPTER") {
	case "ollama":
		client, err := olm.NewClient(olm.NewClientParams{
			Model:   util.GetEnv("COPILOT_MODEL"),
			BaseURL: util.GetEnv("COPILOT_URL"),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	case "openai":
		client, err := oai.NewClient(oai.NewClientParams{
			Model:   util.GetEnv("COPILOT_MODEL"),
			BaseURL: util.GetEnv("COPILOT_URL"),
			APIKey:  util.GetEnv("COPILOT_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create OpenAI client", "err", err)
		}
		return client
	default:
		return nil
	}
}

func loadCatalog() catalog.Catalog {
	path := util.GetEnv("CATALOG_PATH")
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		logger.Fatal("Failed to load connector catalog", "err", err, "path", path)
	}
	return cat
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := loadCatalog()
	sessions := session.NewManager(cat, nil)

	interval := time.Duration(util.GetEnvNumeric("ENRICH_INTERVAL", 45)) * time.Second
	if interval > 0 {
		sessions.StartEnrichment(interval)
		defer sessions.Stop()
	}

	app := &mid.App{
		Sessions: sessions,
		Copilot:  newChatClient(),
		Catalog:  cat,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
