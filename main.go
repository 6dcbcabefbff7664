package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-house/internal/auth"
	"auction-house/internal/config"
	"auction-house/internal/database"
	"auction-house/internal/server"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	utils.SetLevel(cfg.Log.Level)
	gin.SetMode(cfg.Server.GinMode)

	db, err := database.Open(cfg.Database)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
	}
	defer func() {
		if err := database.Close(db); err != nil {
			utils.Error("failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	router := server.SetupRouter(server.NewServices(db), issuer, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server stopped unexpectedly", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}
