package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-car-rental/internal/config"
	"github.com/sbilibin2017/gw-car-rental/internal/handlers"
	"github.com/sbilibin2017/gw-car-rental/internal/hasher"
	"github.com/sbilibin2017/gw-car-rental/internal/jwt"
	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/middlewares"
	"github.com/sbilibin2017/gw-car-rental/internal/migrations"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/repositories"
	"github.com/sbilibin2017/gw-car-rental/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-car-rental API
// @version 1.0.0
// @description Car rental marketplace: host and client accounts, car listings and host payment methods
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// accountService is everything the router needs from one role's AuthService.
type accountService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.ProfileUpdater
	middlewares.Authenticator
}

type carService interface {
	handlers.CarBasicsCreator
	handlers.CarStageUpdater
	handlers.CarGetter
	handlers.CarLister
}

// run initializes the logger, database, optional cache and broker, and the
// HTTP and gRPC health servers. It blocks until ctx is done or a signal
// arrives, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(cfg.PostgresDSN()); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	logger.Log.Info("database schema is up to date")

	// Car cache, disabled when no Redis host is configured
	var carCache services.CarCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		carCache = repositories.NewCarCacheRepository(rdb, cfg.CarCacheTTL)
		logger.Log.Infow("car cache enabled", "addr", cfg.RedisAddr(), "ttl", cfg.CarCacheTTL)
	}

	// Listing events, disabled when no brokers are configured
	var carEvents services.CarEvents
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaCarEventsTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		publisher := services.NewCarEventPublisher(writer)
		// in-flight events are flushed before the writer closes
		defer publisher.Wait()
		carEvents = publisher
		logger.Log.Infow("car events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaCarEventsTopic)
	}

	// Initialize token service and hasher
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)
	passwords := hasher.New()

	// Initialize repositories
	tx := repositories.NewTransactor(db)
	hostRepo := repositories.NewHostRepository(db, repositories.GetTxFromContext)
	clientRepo := repositories.NewClientRepository(db, repositories.GetTxFromContext)
	carRepo := repositories.NewCarRepository(db, repositories.GetTxFromContext)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(db, repositories.GetTxFromContext)

	// Initialize services
	hostAuth := services.NewAuthService(models.RoleHost, hostRepo, hostRepo, passwords, tokens, tx)
	clientAuth := services.NewAuthService(models.RoleClient, clientRepo, clientRepo, passwords, tokens, tx)
	carSvc := services.NewCarService(carRepo, carRepo, tx, carCache, carEvents)
	paymentMethodSvc := services.NewPaymentMethodService(paymentMethodRepo, paymentMethodRepo, passwords, tx)

	r := newRouter(cfg, db, tokens, hostAuth, clientAuth, carSvc, paymentMethodSvc)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// gRPC health server
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listener failed: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	if serveErr != nil {
		return serveErr
	}
	logger.Log.Info("servers stopped gracefully")
	return nil
}

// newRouter mounts every route of the API.
func newRouter(
	cfg *config.Config,
	db handlers.Pinger,
	tokens middlewares.TokenExtractor,
	hosts, clients accountService,
	cars carService,
	paymentMethods handlers.PaymentMethodManager,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", net.JoinHostPort(cfg.AppHost, cfg.AppPort))),
	))

	loginLimit := middlewares.RateLimitMiddleware(cfg.LoginRateLimitRPS, cfg.LoginRateLimitBurst)
	hostGuard := middlewares.AuthMiddleware(tokens, hosts)
	clientGuard := middlewares.AuthMiddleware(tokens, clients)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/host", func(r chi.Router) {
			r.Post("/auth/register", handlers.NewRegisterHandler(hosts))
			r.With(loginLimit).Post("/auth/login", handlers.NewLoginHandler(models.RoleHost, hosts))

			r.Group(func(r chi.Router) {
				r.Use(hostGuard)
				r.Post("/auth/logout", handlers.NewLogoutHandler(models.RoleHost))
				r.Get("/me", handlers.NewMeHandler(models.RoleHost))
				r.Put("/me", handlers.NewUpdateProfileHandler(models.RoleHost, hosts))
				r.Get("/cars", handlers.NewListMyCarsHandler(cars))

				r.Route("/payment-methods", func(r chi.Router) {
					r.Get("/", handlers.NewListPaymentMethodsHandler(paymentMethods))
					r.Post("/mpesa", handlers.NewAddMpesaHandler(paymentMethods))
					r.Post("/card", handlers.NewAddCardHandler(paymentMethods))
					r.Get("/{id}", handlers.NewGetPaymentMethodHandler(paymentMethods))
					r.Put("/{id}/default", handlers.NewSetDefaultPaymentMethodHandler(paymentMethods))
					r.Delete("/{id}", handlers.NewDeletePaymentMethodHandler(paymentMethods))
				})
			})
		})

		r.Route("/client", func(r chi.Router) {
			r.Post("/auth/register", handlers.NewRegisterHandler(clients))
			r.With(loginLimit).Post("/auth/login", handlers.NewLoginHandler(models.RoleClient, clients))

			r.Group(func(r chi.Router) {
				r.Use(clientGuard)
				r.Post("/auth/logout", handlers.NewLogoutHandler(models.RoleClient))
				r.Get("/me", handlers.NewMeHandler(models.RoleClient))
				r.Put("/me", handlers.NewUpdateProfileHandler(models.RoleClient, clients))
			})
		})

		r.Route("/cars", func(r chi.Router) {
			r.Get("/", handlers.NewListCarsHandler(cars))
			r.Get("/{id}", handlers.NewGetCarHandler(cars))

			r.Group(func(r chi.Router) {
				r.Use(hostGuard)
				r.Post("/basics", handlers.NewCreateCarBasicsHandler(cars))
				r.Put("/{id}/specs", handlers.NewUpdateCarSpecsHandler(cars))
				r.Put("/{id}/pricing", handlers.NewUpdateCarPricingHandler(cars))
				r.Put("/{id}/location", handlers.NewUpdateCarLocationHandler(cars))
			})
		})
	})

	return r
}
