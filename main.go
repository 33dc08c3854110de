package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charly15/back-task/config"
	"github.com/charly15/back-task/handlers"
	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/middleware"
	"github.com/charly15/back-task/repositories"
	"github.com/charly15/back-task/services"
)

func main() {
	cfg := config.Load()
	logging.InitLogger(cfg.LogFile, cfg.LogLevel)
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Groups Service...")

	if err := cfg.Validate(); err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repositories.NewMongoStore(ctx, cfg)
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logging.Logger.Errorf("Event ID: DB_DISCONNECT_FAILED, Description: %v", err)
		}
	}()

	indexCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	err = store.EnsureIndexes(indexCtx)
	cancel()
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: Failed to create MongoDB indexes: %v", err)
	}

	userService := services.NewUserService(store.Users())
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	authService := services.NewAuthService(store.Users(), jwtService)
	groupService := services.NewGroupService(store.Groups(), store.Tasks(), userService, cfg.StrictMembership)

	routes := handlers.Router{
		Users:        handlers.NewUserHandler(userService),
		Auth:         handlers.NewAuthHandler(authService),
		Health:       handlers.NewHealthHandler(store, cfg.StoreTimeout),
		Authenticate: middleware.JWTAuth(jwtService),
	}

	var notifier services.Notifier
	if cfg.NotificationsEnabled() {
		breaker := repositories.NewStoreBreaker("cassandra-notifications", uint32(cfg.BreakerMaxFailures), cfg.BreakerTimeout)
		notificationRepo, err := repositories.NewNotificationRepository(cfg.CassandraHosts, cfg.CassandraKeyspace, breaker)
		if err != nil {
			logging.Logger.Fatalf("Event ID: CASSANDRA_INIT_FAILED, Description: Failed to initialize notification repository: %v", err)
		}
		defer notificationRepo.Close()

		notificationService := services.NewNotificationService(notificationRepo)
		notifier = notificationService
		routes.Notifications = handlers.NewNotificationHandler(notificationService)
	} else {
		logging.Logger.Info("Event ID: NOTIFICATIONS_DISABLED, Description: CASSANDRA_HOSTS is empty, notifications are disabled")
	}

	taskService := services.NewTaskService(store.Groups(), store.Tasks(), notifier, cfg.StrictMembership)
	routes.Groups = handlers.NewGroupHandler(groupService, taskService, userService)

	router := handlers.NewRouter(routes)
	router.Use(middleware.RequestLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           middleware.CORS(cfg.CORSOrigin)(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logging.Logger.Info("Event ID: SERVER_SHUTDOWN, Description: Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Errorf("Event ID: SERVER_SHUTDOWN_FAILED, Description: %v", err)
	}
}
