package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/anandaputra/ngsdash/pkg/config"
	"github.com/anandaputra/ngsdash/pkg/fetcher"
	"github.com/anandaputra/ngsdash/pkg/server"
	"github.com/anandaputra/ngsdash/pkg/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "ngsdash",
	})

	var (
		port    = flag.String("port", "", "Server port (overrides config)")
		cfgFile = flag.String("config", "", "Config file")
	)
	flag.Parse()

	cfg, err := config.Build(*cfgFile, nil)
	if err != nil {
		logger.Fatal("config error", "err", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	svc := service.New(cfg, fetcher.New(cfg, logger), logger)
	srv := server.New(cfg, svc, logger)

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	logger.Info("starting server", "addr", addr)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
