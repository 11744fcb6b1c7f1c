package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Settings struct {
	Port          string
	PublicBaseURL string

	AssetBackend    string
	UploadDir       string
	UploadPublicURL string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseBucket     string

	AdminJWTSecret string
	BrandMarkPath  string
	MenuCacheTTL   time.Duration
	EventsTopic    string
	AllowedOrigins []string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	ContactToEmail string
	BrandName      string
	NotifyGroupID  string
	DedupeTTL      time.Duration

	GatewayPort string
	MenuSvcURL  string
	FrontendDir string
}

// LoadEnv reads an optional .env file. A missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: failed to load .env: %v", err)
	}
}

func LoadSettings() Settings {
	LoadEnv()

	smtpPort, err := strconv.Atoi(GetEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("WARNING: invalid SMTP_PORT, using 587: %v", err)
		smtpPort = 587
	}

	ttl, err := time.ParseDuration(GetEnv("MENU_CACHE_TTL", "5m"))
	if err != nil {
		log.Printf("WARNING: invalid MENU_CACHE_TTL, using 5m: %v", err)
		ttl = 5 * time.Minute
	}

	dedupeTTL, err := time.ParseDuration(GetEnv("NOTIFY_DEDUPE_TTL", "24h"))
	if err != nil {
		log.Printf("WARNING: invalid NOTIFY_DEDUPE_TTL, using 24h: %v", err)
		dedupeTTL = 24 * time.Hour
	}

	smtpUser := os.Getenv("SMTP_USER")

	return Settings{
		Port:               GetEnv("PORT", "8081"),
		PublicBaseURL:      strings.TrimRight(GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		AssetBackend:       GetEnv("ASSET_BACKEND", "supabase"),
		UploadDir:          GetEnv("UPLOAD_DIR", "./uploads"),
		UploadPublicURL:    strings.TrimRight(GetEnv("UPLOAD_PUBLIC_URL", "http://localhost:8080/uploads"), "/"),
		SupabaseURL:        strings.TrimRight(firstEnv("SUPABASE_URL", "VITE_SUPABASE_URL"), "/"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseBucket:     GetEnv("SUPABASE_BUCKET", "qrmenu"),
		AdminJWTSecret:     os.Getenv("ADMIN_JWT_SECRET"),
		BrandMarkPath:      os.Getenv("BRAND_MARK_PATH"),
		MenuCacheTTL:       ttl,
		EventsTopic:        GetEnv("EVENTS_TOPIC", "restaurant-events"),
		AllowedOrigins:     splitList(GetEnv("CORS_ALLOWED_ORIGINS", "*")),
		SMTPHost:           GetEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           smtpPort,
		SMTPUser:           smtpUser,
		SMTPPass:           os.Getenv("SMTP_PASS"),
		ContactToEmail:     GetEnv("CONTACT_TO_EMAIL", smtpUser),
		BrandName:          GetEnv("BRAND_NAME", "KhadyamQR"),
		NotifyGroupID:      GetEnv("NOTIFY_GROUP_ID", "notify-svc-consumer"),
		DedupeTTL:          dedupeTTL,
		GatewayPort:        GetEnv("GATEWAY_PORT", "8080"),
		MenuSvcURL:         strings.TrimRight(GetEnv("MENU_SVC_URL", "http://localhost:8081"), "/"),
		FrontendDir:        GetEnv("FRONTEND_DIR", "./dist"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func MustInitPostgres() *sql.DB {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "host=" + os.Getenv("DB_HOST") + " port=" + os.Getenv("DB_PORT") +
			" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
			" dbname=" + os.Getenv("DB_NAME") + " sslmode=" + GetEnv("DB_SSLMODE", "disable")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{GetEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(GetEnv("KAFKA_BROKER", "localhost:9092")),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
