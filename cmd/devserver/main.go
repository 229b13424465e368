// Command devserver runs the Foodcourt development API over the seeded
// in-memory stores.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcourt/internal/bootstrap"
	"foodcourt/internal/config"
	"foodcourt/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rt, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedBuiltIns: cfg.UseMockAPI})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	srv := server.NewServer(cfg, rt)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Foodcourt dev server listening on :%s (mock=%v)", cfg.Port, cfg.UseMockAPI)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
