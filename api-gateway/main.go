package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qrmenu-platform/api-gateway/internal/gateway"
	"qrmenu-platform/config"

	"github.com/rs/cors"
)

func main() {
	settings := config.LoadSettings()

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:  settings.MenuSvcURL,
		FrontendDir: settings.FrontendDir,
	}, &http.Client{Timeout: 60 * time.Second})

	srv := &http.Server{
		Addr:              ":" + settings.GatewayPort,
		Handler:           newHandler(gw, settings.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("API Gateway starting on port %s, menu-svc at %s", settings.GatewayPort, settings.MenuSvcURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down API Gateway...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: graceful shutdown failed: %v", err)
	}
}

func newHandler(gw *gateway.Gateway, origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}
