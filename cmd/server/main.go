package main

import (
	"github.com/chainsight/riskgraph/backend/internal/server"
	"github.com/chainsight/riskgraph/backend/internal/util"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
	"github.com/chainsight/riskgraph/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
