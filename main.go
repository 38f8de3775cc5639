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

	"golang.org/x/sync/errgroup"

	"video-field/domain/repository"
	"video-field/infrastructure/cache"
	youtubeclient "video-field/infrastructure/clients/youtube"
	"video-field/infrastructure/configuration"
	"video-field/infrastructure/logger"
	"video-field/infrastructure/persistence"
	httpHandler "video-field/interfaces/http"
	"video-field/server"
	"video-field/usecase"
)

// tokenCheckInterval drives the background credential check. Losing a tick
// is harmless: EnsureValid refreshes reactively on the next request.
const tokenCheckInterval = time.Hour

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
		os.Exit(1)
	}
	if err := persistence.EnsureCredentialSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring credential schema")
		os.Exit(1)
	}
	logger.GetLogger().Info("Database connected.")

	credentialStore := persistence.NewCredentialRepository(psqlDb)

	// Redis keeps OAuth states across restarts and replicas; the in-memory
	// store is the single-instance fallback.
	var stateStore repository.IStateStore
	if redisClient, redisErr := cache.NewRedisClient(ctx); redisErr != nil {
		logger.GetLogger().WithField("error", redisErr).Warn("Redis not available - using in-memory OAuth state store")
		stateStore = cache.NewMemoryStateStore()
	} else {
		logger.GetLogger().Info("Redis client initialized successfully.")
		stateStore = cache.NewRedisStateStore(redisClient)
	}

	youtubeConfig := configuration.GetYouTubeConfig()
	if missing := youtubeConfig.Missing(); len(missing) > 0 {
		// Not fatal: the service starts and reports ConfigurationError per
		// request until the deployment is fixed.
		logger.GetLogger().WithField("missing", missing).Warn("YouTube OAuth client not fully configured")
	}

	provider := youtubeclient.NewClient()
	uploadBroker := youtubeclient.NewUploadBroker(youtubeConfig.UploadBase)

	authUseCase := usecase.NewAuthUseCase(youtubeConfig, credentialStore, stateStore, provider)
	catalogUseCase := usecase.NewCatalogUseCase(authUseCase, provider)
	uploadUseCase := usecase.NewUploadUseCase(authUseCase, uploadBroker, provider)
	lifecycleUseCase := usecase.NewLifecycleUseCase(authUseCase, provider)

	authHandler := httpHandler.NewAuthHandler(authUseCase)
	videoFieldHandler := httpHandler.NewVideoFieldHandler(uploadUseCase, catalogUseCase, lifecycleUseCase)

	router := server.InitiateRouter(authHandler, videoFieldHandler)

	// Background credential check keeps the token warm between requests
	g.Go(func() error {
		ticker := time.NewTicker(tokenCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				checkCtx, cancelCheck := context.WithTimeout(ctx, 30*time.Second)
				authUseCase.CheckAndRefresh(checkCtx)
				cancelCheck()
			}
		}
	})

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
		} else {
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
