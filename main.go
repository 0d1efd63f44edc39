package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/symtab/bench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := bench.RootCommand().ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("symtab failed")
		stop()
		os.Exit(1)
	}
}
