package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/RubachokBoss/studentctl/internal/delivery/cli"
	"github.com/RubachokBoss/studentctl/pkg/logger"
)

func main() {
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	root := cli.NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("studentctl failed")
	}
}
