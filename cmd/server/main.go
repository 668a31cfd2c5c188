package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fridgehero/backend/config"
	httpDelivery "github.com/fridgehero/backend/internal/delivery/http"
	"github.com/fridgehero/backend/internal/domain"
	"github.com/fridgehero/backend/internal/infrastructure/cache"
	"github.com/fridgehero/backend/internal/infrastructure/supabase"
	"github.com/fridgehero/backend/internal/pkg/logger"
	"github.com/fridgehero/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("starting fridgehero backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type))

	// Cache backend for catalog reads
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			zlog.Fatal("failed to connect to redis", zap.Error(err))
		}
		cacheRepo = redisCache
	default:
		cacheRepo = cache.NewMemoryCache()
	}

	// Hosted data platform client, catalog reads cached at this boundary
	client := supabase.NewClient(
		cfg.Supabase.URL,
		cfg.Supabase.APIKey,
		zlog.Named("supabase"),
		supabase.WithCatalogCache(cacheRepo, cfg.Cache.TTL),
	)

	// Recommendation core with the curated production tables
	recommendations := usecase.NewRecommendationService(
		client,
		client,
		client,
		usecase.NewDefaultIngredientTables(),
		zlog.Named("recommend"),
		usecase.RecommendationServiceConfig{
			MaxResults:    cfg.Recommend.MaxResults,
			MinMatchScore: cfg.Recommend.MinMatchScore,
		},
	)

	handler := httpDelivery.NewHandler(recommendations)
	router := httpDelivery.SetupRouter(cfg, handler, zlog.Named("http"))

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
