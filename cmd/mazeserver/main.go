// Command mazeserver serves maze generation over HTTP.
//
// Settings come from config (.env, then MAZE_* and GIN_MODE environment
// variables). The server shuts down gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	gin.SetMode(cfg.GinMode)

	seed := func() int64 { return time.Now().UnixNano() }
	if cfg.Seed != 0 {
		// A fixed MAZE_SEED makes every seedless request reproducible.
		seed = func() int64 { return cfg.Seed }
	}

	store := server.NewStore(cfg.StoreCapacity)
	router := server.NewRouter(server.Config{
		Addr:        cfg.Addr,
		Controllers: []server.Controller{server.NewMazeController(cfg, store, seed)},
	})
	srv := router.Server()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[APP] [INFO] listening on %s (store capacity %d)", cfg.Addr, cfg.StoreCapacity)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[APP] [FATAL] %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[APP] [INFO] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[APP] [INFO] shutdown: %v", err)
	}
}
