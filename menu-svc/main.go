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

	"qrmenu-platform/assets"
	"qrmenu-platform/config"
	httpapi "qrmenu-platform/menu-svc/internal/api/http"
	"qrmenu-platform/menu-svc/internal/service"
	"qrmenu-platform/menu-svc/internal/storage"
)

func main() {
	settings := config.LoadSettings()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, settings.MenuCacheTTL)

	writer := config.NewKafkaWriter(settings.EventsTopic)
	defer writer.Close()
	events := storage.NewKafkaPublisher(writer)

	store, uploads, err := newAssetStore(settings)
	if err != nil {
		log.Fatal("Failed to configure asset store:", err)
	}

	var auth service.AuthProvider
	if settings.SupabaseURL != "" && settings.SupabaseServiceKey != "" {
		auth = storage.NewSupabaseAuth(settings.SupabaseURL, settings.SupabaseServiceKey)
	} else {
		log.Println("WARNING: SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY missing, login management disabled")
	}

	marks := service.NewAssetMarkLoader(store, loadBrandMark(settings.BrandMarkPath))
	publisher := service.NewQRPublisher(repo, store, service.NewQRRenderer(), marks, cache, events, settings.PublicBaseURL)

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo, repo, store, cache, events),
		publisher,
		service.NewMenuService(repo, repo, store, cache),
		service.NewAccountService(auth, repo, repo),
		service.NewContactService(events),
		httpapi.NewAuthenticator(settings.AdminJWTSecret),
	)
	if settings.AdminJWTSecret == "" {
		log.Println("WARNING: ADMIN_JWT_SECRET not set, admin routes are unauthenticated")
	}

	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		AllowedOrigins: settings.AllowedOrigins,
		Uploads:        uploads,
	})
	srv := httpapi.NewServer(":"+settings.Port, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := httpapi.StartServer(srv); err != nil {
			log.Fatal("Server error:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down Menu Service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: graceful shutdown failed: %v", err)
	}
}

// newAssetStore picks the storage backend. The filesystem backend also
// returns a handler for serving its files.
func newAssetStore(settings config.Settings) (service.AssetStore, http.Handler, error) {
	switch settings.AssetBackend {
	case "fs":
		if err := os.MkdirAll(settings.UploadDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create upload dir: %w", err)
		}
		store := assets.NewFileStore(settings.UploadDir, settings.UploadPublicURL)
		return store, store.Handler(), nil
	case "supabase":
		if settings.SupabaseURL == "" || settings.SupabaseServiceKey == "" {
			return nil, nil, fmt.Errorf("supabase backend needs SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
		}
		return assets.NewSupabaseStore(settings.SupabaseURL, settings.SupabaseServiceKey, settings.SupabaseBucket), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown ASSET_BACKEND %q", settings.AssetBackend)
	}
}

func loadBrandMark(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARNING: brand mark %s unavailable, QR codes fall back to plain: %v", path, err)
		return nil
	}
	return data
}
