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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/facades"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/handlers"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/jwt"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/middlewares"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/repositories"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/services"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parsed from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaAddr  string
	kafkaTopic string

	exchangerHost string
	exchangerPort string

	receiptDir string

	jwtSecretKey       string
	jwtExpSecond       int
	rateRefreshSecond  int
	rateCacheTTLSecond int
}

// @title scopstrade wallet API
// @version 1.0.0
// @description Wallet gateway for deposit and withdrawal flows
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration with defaults applied.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return
	}

	// Kafka config
	cfg.kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// Rate provider (gRPC) config
	cfg.exchangerHost = getEnv("EXCHANGER_HOST", "localhost")
	cfg.exchangerPort = getEnv("EXCHANGER_PORT", "50051")
	if cfg.rateRefreshSecond, err = getEnvInt("RATE_REFRESH_SECOND", 300); err != nil {
		return
	}
	if cfg.rateCacheTTLSecond, err = getEnvInt("RATE_CACHE_TTL_SECOND", 600); err != nil {
		return
	}

	// Receipt storage config
	cfg.receiptDir = getEnv("RECEIPT_DIR", "./receipts")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", 86400); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC rate provider,
// and HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	log, err := logger.New(cfg.logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for transaction events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.kafkaAddr),
		Topic:    cfg.kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Connect to the gRPC rate provider
	grpcAddr := fmt.Sprintf("%s:%s", cfg.exchangerHost, cfg.exchangerPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC service at", grpcAddr, ":", err)
	}
	defer conn.Close()
	rateProvider := facades.NewRateProviderGRPCFacade(pb.NewExchangeServiceClient(conn))

	// Receipt storage
	receipts, err := storage.NewReceiptStore(cfg.receiptDir)
	if err != nil {
		log.Fatal("Failed to initialize receipt store:", err)
	}

	// Initialize JWT service
	tokenTTL := time.Duration(cfg.jwtExpSecond) * time.Second
	jwtSvc := jwt.New(cfg.jwtSecretKey, tokenTTL)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	optionsReadRepo := repositories.NewWalletOptionsReadRepository(db)
	optionsWriteRepo := repositories.NewWalletOptionsWriteRepository(db)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	methodsRepo := repositories.NewWithdrawalMethodsReadRepository(db)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	rateCache := repositories.NewRateCacheRepository(rdb, time.Duration(cfg.rateCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	depositService := services.NewDepositService(optionsReadRepo, rateCache, receipts, txnWriteRepo, kafkaWriter)
	withdrawalService := services.NewWithdrawalService(profileReadRepo, profileWriteRepo, methodsRepo, txnWriteRepo, txnReadRepo, kafkaWriter)
	rateRefresher := services.NewRateRefresher(rateProvider, rateCache, optionsWriteRepo, time.Duration(cfg.rateRefreshSecond)*time.Second)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, tokenTTL)
	depositOptionsHandler := handlers.NewDepositOptionsHandler(depositService, jwtSvc)
	depositCreateHandler := handlers.NewDepositCreateHandler(depositService, jwtSvc)
	withdrawalProfileHandler := handlers.NewWithdrawalProfileHandler(withdrawalService, jwtSvc)
	withdrawalMethodsHandler := handlers.NewWithdrawalMethodsHandler(withdrawalService, jwtSvc)
	withdrawalHistoryHandler := handlers.NewWithdrawalHistoryHandler(withdrawalService, jwtSvc)
	withdrawalCreateHandler := handlers.NewWithdrawalCreateHandler(withdrawalService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/deposits/options/", depositOptionsHandler)
		r.Post("/deposits/create/", depositCreateHandler)
		r.Get("/withdrawals/profile/", withdrawalProfileHandler)
		r.Get("/withdrawals/methods/", withdrawalMethodsHandler)
		r.Get("/withdrawals/history/", withdrawalHistoryHandler)
		r.With(middlewares.TxMiddleware(db)).Post("/withdrawals/create/", withdrawalCreateHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Keep option rates fresh in the background
	go rateRefresher.Run(ctxShutdown)

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
