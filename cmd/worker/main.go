package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harborlight/harborlight/internal/setup"
	"github.com/harborlight/harborlight/internal/worker/sweep"
	"go.uber.org/zap"
)

// WorkerLogDir specifies where worker log files are stored.
const WorkerLogDir = "logs/worker_logs"

func main() {
	// Initialize application with required dependencies
	app, err := setup.InitializeApp(context.Background(), WorkerLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup(context.Background())

	// Optional delay lets the database settle after a deploy
	if delay := time.Duration(app.Config.Worker.StartupDelay) * time.Millisecond; delay > 0 {
		app.Logger.Info("Delaying worker startup", zap.Duration("delay", delay))
		time.Sleep(delay)
	}

	ctx, cancel := context.WithCancel(context.Background())

	worker := sweep.New(app, app.Logger)

	go worker.Start(ctx)

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Logger.Info("Shutting down sweep worker...")
	cancel()
}
