package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	eventrequestapp "github.com/browbeat/event-marketplace/application/eventrequest"
	reviewapp "github.com/browbeat/event-marketplace/application/review"
	"github.com/browbeat/event-marketplace/application/seed"
	userapp "github.com/browbeat/event-marketplace/application/user"
	vendorapp "github.com/browbeat/event-marketplace/application/vendor"
	"github.com/browbeat/event-marketplace/cmd/config"
	redisclient "github.com/browbeat/event-marketplace/cmd/redis"
	_ "github.com/browbeat/event-marketplace/docs"
	"github.com/browbeat/event-marketplace/migrations"
	eventRequestRepo "github.com/browbeat/event-marketplace/repository/eventrequest"
	redisRepo "github.com/browbeat/event-marketplace/repository/redis"
	reviewRepo "github.com/browbeat/event-marketplace/repository/review"
	txRepo "github.com/browbeat/event-marketplace/repository/tx"
	userRepo "github.com/browbeat/event-marketplace/repository/user"
	vendorRepo "github.com/browbeat/event-marketplace/repository/vendor"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/transport"
	"github.com/browbeat/event-marketplace/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type repositories struct {
	tx           txRepo.TxRepository
	user         userRepo.UserRepository
	vendor       vendorRepo.VendorRepository
	eventRequest eventRequestRepo.EventRequestRepository
	review       reviewRepo.ReviewRepository
}

// @title BrowBeat Event Marketplace API
// @version 1.0
// @description Vendors, event requests and reviews for the event marketplace
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("storage", cfg.Storage.Driver))

	repos, closeDB := openRepositories(cfg)
	defer closeDB()

	// Sessions and response cache: Redis when configured, process memory otherwise
	var RedisRepo redisRepo.Repository
	if redisclient.Enabled(cfg) {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		RedisRepo = redisRepo.NewRepository()
	} else {
		logger.Info("redis not configured, using in-memory session store")
		RedisRepo = redisRepo.NewMemoryRepository()
	}

	var publisher rabbitmq.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Info("rabbitmq not configured, domain events are dropped")
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, repos.tx, repos.user, RedisRepo, publisher)
	VendorApp := vendorapp.NewVendorApp(repos.tx, repos.vendor, repos.user, publisher)
	EventRequestApp := eventrequestapp.NewEventRequestApp(repos.tx, repos.eventRequest, repos.user, repos.vendor, publisher)
	ReviewApp := reviewapp.NewReviewApp(repos.tx, repos.review, repos.user, repos.vendor, publisher)

	if cfg.SeedData {
		if err := seed.NewSeeder(UserApp, VendorApp, EventRequestApp, ReviewApp).Run(context.Background()); err != nil {
			logger.Fatal("err seed sample data", zap.Error(err))
		}
	}

	httpTransport := transport.NewTransport(cfg, RedisRepo, UserApp, VendorApp, EventRequestApp, ReviewApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func openRepositories(cfg *config.Config) (repositories, func()) {
	switch cfg.Storage.Driver {
	case "mysql", "postgres":
		// Connect to database
		db, err := sqlx.Connect(cfg.Storage.Driver, cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}

		// Set database connection pool settings
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		if cfg.Database.AutoMigrate {
			if err := migrations.AutoMigrate(db, cfg.Storage.Driver, cfg.Database.MigrateRetries); err != nil {
				logger.Fatal("err migrate db", zap.Error(err))
			}
		}

		return repositories{
			tx:           txRepo.NewTxRepository(db),
			user:         userRepo.NewUserRepository(db),
			vendor:       vendorRepo.NewVendorRepository(db),
			eventRequest: eventRequestRepo.NewEventRequestRepository(db),
			review:       reviewRepo.NewReviewRepository(db),
		}, func() { _ = db.Close() }
	case "memory", "":
		return repositories{
			tx:           txRepo.NewMemoryTxRepository(),
			user:         userRepo.NewMemoryUserRepository(),
			vendor:       vendorRepo.NewMemoryVendorRepository(),
			eventRequest: eventRequestRepo.NewMemoryEventRequestRepository(),
			review:       reviewRepo.NewMemoryReviewRepository(),
		}, func() {}
	default:
		logger.Fatal("unknown storage driver", zap.String("driver", cfg.Storage.Driver))
		return repositories{}, func() {}
	}
}
