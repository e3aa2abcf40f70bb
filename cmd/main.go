package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/cultureschool-backend/internal/handlers"
	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/metrics"
	"github.com/sbilibin2017/cultureschool-backend/internal/middlewares"
	"github.com/sbilibin2017/cultureschool-backend/internal/relay"
	"github.com/sbilibin2017/cultureschool-backend/internal/repositories"
	"github.com/sbilibin2017/cultureschool-backend/internal/services"
	"github.com/sbilibin2017/cultureschool-backend/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	LogFormat      string
	Migrate        bool
	PublicURL      string
	AllowedOrigins []string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisLinkTTL      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	StorageURL    string
	StorageBucket string
	StorageAPIKey string
}

// @title CultureSchool API
// @version 1.0.0
// @description Backend for boards, media links, pins and the realtime relay
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// splitList splits a comma separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, and object store configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.PublicURL = getEnv("APP_PUBLIC_URL", "")
	cfg.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))
	if cfg.Migrate, err = strconv.ParseBool(getEnv("APP_MIGRATE", "true")); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	var ttl int
	if ttl, err = strconv.Atoi(getEnv("REDIS_LINK_TTL_SECOND", "86400")); err != nil {
		return
	}
	cfg.RedisLinkTTL = time.Duration(ttl) * time.Second

	// Kafka config, no brokers disables event publishing
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "cultureschool.events")

	// Object store config
	cfg.StorageURL = getEnv("STORAGE_URL", "http://localhost:54321")
	cfg.StorageBucket = getEnv("STORAGE_BUCKET", "media")
	cfg.StorageAPIKey = getEnv("STORAGE_API_KEY", "")

	return
}

// app holds the services served over HTTP.
type app struct {
	db       *sqlx.DB
	hub      *relay.Hub
	profiles *services.ReconcileService
	settings *services.ReconcileService
	circles  *services.CircleService
	boards   *services.BoardService
	links    *services.LinkService
	pins     *services.PinService
	uploads  *services.UploadService

	allowedOrigins []string
	swaggerURL     string
}

// newRouter mounts every endpoint with its middleware chain.
func newRouter(a app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins(a.allowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.InstrumentHandler)

	r.Get("/", handlers.NewRootHandler())
	r.Handle("/ws", a.hub)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(a.swaggerURL)))

	r.Get("/link/{slug}", handlers.NewStreamLinkHandler(a.links))
	r.Get("/m/{slug}", handlers.NewLandingPageHandler(a.links))

	r.Route("/api", func(r chi.Router) {
		r.Get("/test-connection", handlers.NewTestConnectionHandler(a.db))

		// Profiles, settings and circles
		r.Post("/save-to-supabase", handlers.NewSaveRecordHandler(a.profiles))
		r.Get("/get-user", handlers.NewGetRecordHandler(a.profiles))
		r.Post("/save-settings", handlers.NewSaveRecordHandler(a.settings))
		r.Get("/get-settings", handlers.NewGetRecordHandler(a.settings))
		r.Get("/get-frame-settings", handlers.NewFrameSettingsHandler(a.circles))
		r.Get("/get-circle-from-supabase", handlers.NewGetCircleHandler(a.circles))
		r.Post("/delete-all-circle-messages", handlers.NewPurgeCircleHandler(a.circles))

		// Boards and media
		r.Post("/boards", handlers.NewCreateBoardHandler(a.boards))
		r.Get("/boards", handlers.NewListBoardsHandler(a.boards))
		r.Get("/boards/{id}", handlers.NewGetBoardHandler(a.boards))
		r.Patch("/boards/{id}", handlers.NewUpdateBoardHandler(a.boards))
		r.Post("/boards/{id}/media", handlers.NewAddMediaHandler(a.boards))
		r.Delete("/media/{id}", handlers.NewDeleteMediaHandler(a.boards))
		r.Get("/gallery", handlers.NewGalleryHandler(a.boards))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(a.db))
			r.Delete("/boards/{id}", handlers.NewDeleteBoardHandler(a.boards))
			r.Put("/boards/{id}/media/order", handlers.NewReorderMediaHandler(a.boards))
		})

		// Media links
		r.Post("/links", handlers.NewCreateLinkHandler(a.links))
		r.Get("/links/{slug}", handlers.NewResolveLinkHandler(a.links))

		// Pins
		r.Post("/pin-item", handlers.NewPinItemHandler(a.pins))
		r.Get("/get-pins", handlers.NewGetPinsHandler(a.pins))
		r.Post("/react-to-pin", handlers.NewReactToPinHandler(a.pins))

		// Uploads and inspirations
		r.Post("/save-media-item", handlers.NewSaveMediaItemHandler(a.uploads))
		r.Post("/save-inspiration", handlers.NewSaveInspirationHandler(a.uploads))
		r.Post("/upload-media", handlers.NewUploadMediaHandler(a.uploads))
		r.Get("/get-media", handlers.NewGetMediaHandler(a.uploads))
	})

	return r
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// run initializes the logger, database, Redis, Kafka, object store, relay
// hub, and HTTP server. It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if cfg.Migrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
		log.Info("Schema migrated")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Publishing events to Kafka topic %s", cfg.KafkaTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, domain events are not published")
	}

	// Object store
	httpClient := &http.Client{}
	objectStore, err := storage.New(storage.Config{
		ProjectURL: cfg.StorageURL,
		Bucket:     cfg.StorageBucket,
		APIKey:     cfg.StorageAPIKey,
	}, httpClient)
	if err != nil {
		return err
	}

	// Relay hub
	hubOpts := relay.DefaultOptions()
	hubOpts.AllowedOrigins = cfg.AllowedOrigins
	hub := relay.NewHub(hubOpts)

	// Initialize repositories
	profileRepo := repositories.NewUserProfileRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	boardWriteRepo := repositories.NewBoardWriteRepository(db, middlewares.GetTxFromContext)
	boardReadRepo := repositories.NewBoardReadRepository(db)
	mediaWriteRepo := repositories.NewMediaWriteRepository(db, middlewares.GetTxFromContext)
	mediaReadRepo := repositories.NewMediaReadRepository(db)
	linkWriteRepo := repositories.NewLinkWriteRepository(db)
	linkReadRepo := repositories.NewLinkReadRepository(db)
	linkCacheRepo := repositories.NewLinkCacheRepository(rdb, cfg.RedisLinkTTL)
	pinRepo := repositories.NewPinRepository(db)
	uploadRepo := repositories.NewMediaUploadRepository(db)

	// Initialize services
	publisher := services.NewEventPublisher(kafkaWriter)
	profileService := services.NewReconcileService(profileRepo, "email")
	settingsService := services.NewReconcileService(settingsRepo, "email")
	boardService := services.NewBoardService(boardWriteRepo, boardReadRepo, mediaWriteRepo, mediaReadRepo, publisher)

	a := app{
		db:       db,
		hub:      hub,
		profiles: profileService,
		settings: settingsService,
		circles:  services.NewCircleService(profileService, settingsService),
		boards:   boardService,
		links:    services.NewLinkService(linkWriteRepo, linkReadRepo, linkCacheRepo, httpClient, publisher, cfg.PublicURL),
		pins:     services.NewPinService(pinRepo),
		uploads:  services.NewUploadService(uploadRepo, objectStore, boardService),

		allowedOrigins: cfg.AllowedOrigins,
		swaggerURL:     fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	if err := hub.Shutdown(shutdownCtx); err != nil {
		log.Errorw("relay shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
