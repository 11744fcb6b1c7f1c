package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"qrmenu-platform/assets"
	"qrmenu-platform/config"
	"qrmenu-platform/notify-svc/internal/domain"
	"qrmenu-platform/notify-svc/internal/service"
	"qrmenu-platform/notify-svc/internal/storage"
)

func main() {
	settings := config.LoadSettings()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(settings.EventsTopic, settings.NotifyGroupID)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewRedisDeduper(rdb, settings.DedupeTTL))

	db := config.MustInitPostgres()
	defer db.Close()

	remover, err := newAssetRemover(settings)
	if err != nil {
		log.Printf("WARNING: asset cleanup disabled: %v", err)
	} else {
		consumer.On(domain.EventRestaurantDeleted, service.NewAssetCleaner(remover, storage.NewRestaurantDirectory(db)))
	}

	if settings.SMTPUser != "" && settings.SMTPPass != "" {
		mailer := storage.NewSMTPMailer(settings.SMTPHost, settings.SMTPPort, settings.SMTPUser, settings.SMTPPass, settings.BrandName)
		consumer.On(domain.EventContactSubmitted, service.NewContactNotifier(mailer, settings.ContactToEmail, settings.BrandName))
	} else {
		log.Println("WARNING: SMTP_USER or SMTP_PASS missing, contact emails disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[notify-svc] listening on topic %s as %s", settings.EventsTopic, settings.NotifyGroupID)
	consumer.Start(ctx)
}

func newAssetRemover(settings config.Settings) (service.AssetRemover, error) {
	switch settings.AssetBackend {
	case "fs":
		return assets.NewFileStore(settings.UploadDir, settings.UploadPublicURL), nil
	case "supabase":
		if settings.SupabaseURL == "" || settings.SupabaseServiceKey == "" {
			return nil, fmt.Errorf("supabase backend needs SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
		}
		return assets.NewSupabaseStore(settings.SupabaseURL, settings.SupabaseServiceKey, settings.SupabaseBucket), nil
	default:
		return nil, fmt.Errorf("unknown ASSET_BACKEND %q", settings.AssetBackend)
	}
}
