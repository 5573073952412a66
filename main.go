package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"LearningHubBackend/cache"
	"LearningHubBackend/config"
	"LearningHubBackend/database"
	"LearningHubBackend/handlers"
	"LearningHubBackend/jobs"
	"LearningHubBackend/learning"
	"LearningHubBackend/logging"
	"LearningHubBackend/metrics"
	"LearningHubBackend/middleware"
	"LearningHubBackend/observability"
	"LearningHubBackend/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal("Failed to init logger: ", err)
	}

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		lg.Base.Warn("sentry disabled", zap.Error(err))
	}

	err = run(cfg, lg.Base)
	if err != nil {
		lg.Base.Error("server stopped with error", zap.Error(err))
		observability.CaptureErr(err)
	}
	flushSentry()
	lg.Closer()
	if err != nil {
		os.Exit(1)
	}
}

// run owns every resource it opens, so all of them are released before
// main flushes Sentry and exits.
func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	store := database.NewStore(db)

	// Uploaded files go to GCS when a bucket is configured.
	var files storage.Storage = storage.NewLocal(cfg.UploadDir)
	if cfg.GCSBucket != "" {
		gcs, err := storage.NewGCS(ctx, cfg.GCSBucket)
		if err != nil {
			return fmt.Errorf("init gcs: %w", err)
		}
		defer gcs.Close()
		files = gcs
	}

	runner := jobs.New(ctx, logger)

	weights := learning.DefaultWeights
	weights.VideoCompletion = cfg.LeaderboardVideoPoints
	board := learning.NewLeaderboard(store, weights)
	var leaderboard handlers.LeaderboardSource = board
	if cfg.RedisURL != "" {
		rdb, err := cache.Dial(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, leaderboard served uncached", zap.Error(err))
		} else {
			defer rdb.Close()
			cached := cache.NewLeaderboard(rdb, board, cfg.LeaderboardCacheTTL, logger)
			runner.Every(cfg.LeaderboardCacheTTL, "leaderboard_refresh", cached.Refresh)
			leaderboard = cached
		}
	}
	runner.Every(time.Hour, "notifications_prune", jobs.PruneNotifications(store, cfg.NotificationRetention, logger))

	notifier := learning.NewNotifier(store, logger)
	h := handlers.New(handlers.Deps{
		Store:         store,
		Auth:          middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL),
		Progress:      learning.NewProgressTracker(store),
		Quizzes:       learning.NewQuizTracker(store, cfg.MaxQuizAttempts),
		Leaderboard:   leaderboard,
		Subscriptions: learning.NewSubscriptionGate(store),
		Notifier:      notifier,
		Files:         files,
		Log:           logger,
		DBPing:        func(ctx context.Context) error { return database.Ping(ctx, db) },
	})

	router := mux.NewRouter()

	// Serve uploaded files
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	h.Routes(router)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
	go limiter.RunCleanup(ctx, 5*time.Minute)

	router.Use(middleware.RequestLogger(logger))
	router.Use(limiter.Middleware)

	// Configure CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			notifier.Wait()
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	notifier.Wait()
	if err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
