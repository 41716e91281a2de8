package main

import (
	"github.com/wavo-hq/onboarding/backend/internal/server"
	"github.com/wavo-hq/onboarding/backend/internal/util"
	"github.com/wavo-hq/onboarding/backend/pkg/logger"
	"github.com/wavo-hq/onboarding/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Prefix: "onboarding",
	})
	logger.Init(consoleLogger)

	server.Init()
}
