package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GH-57/First-Project/internal/api/routes"
	"github.com/GH-57/First-Project/internal/classifier"
	"github.com/GH-57/First-Project/internal/config"
	"github.com/GH-57/First-Project/internal/store"
	"github.com/GH-57/First-Project/internal/store/memory"
	"github.com/GH-57/First-Project/internal/store/mysql"
)

// @title Proverb Chat API
// @version 1.0
// @description A mood-to-proverb recommendation API with user accounts
func main() {
	cfg := config.Load()

	var st store.Store
	switch cfg.Store.Driver {
	case "memory":
		st = memory.New()
	case "mysql":
		db := mysql.Connect(cfg.Database)
		defer db.Close()
		st = db
	default:
		log.Fatalf("Unknown STORE_DRIVER %q (want memory or mysql)", cfg.Store.Driver)
	}

	cls := classifier.NewOpenAI(cfg.Classifier)

	// Setup routes here:
	router := routes.SetupRoutes(cfg, st, cls)
	// End routes

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starts server in a goroutine
	go func() {
		log.Printf("Server running on port %d (store: %s)", cfg.Server.Port, cfg.Store.Driver)
		err := server.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting the server: %v", err)
		}
	}()

	// channel to capture quit signals (e.g. CTRL+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down the server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error on server shutdown: %v", err)
	}

	log.Println("Server shut down successfully")
}
