package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/XPTOOLS/Tiktokdownloaderxp/assembly"
	"github.com/XPTOOLS/Tiktokdownloaderxp/conf"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := conf.Load(*configPath)
	if err != nil {
		println("load config: " + err.Error())
		os.Exit(1)
	}

	app, err := assembly.New(cfg)
	if err != nil {
		println("init application: " + err.Error())
		os.Exit(1)
	}
	logger := app.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info(context.Background(), "starting shutdown")
		app.Close(context.Background())
		logger.Info(context.Background(), "shutdown completed")
	}()

	err = app.Run(ctx)
	if err != nil {
		logger.Error(ctx, "http server stopped", zap.Error(err))
		stop()
	}
	<-shutdownDone
	if err != nil {
		os.Exit(1)
	}
}
