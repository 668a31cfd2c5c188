package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fridgehero/backend/internal/domain"
)

const (
	restPath = "/rest/v1"

	// Free-tier projects throttle aggressively; stay well under.
	requestsPerSecond = 10
	requestBurst      = 20

	catalogCacheKey = "catalog:recipes"
)

// Client reads household items, user profiles and the recipe catalog from
// the hosted data platform's REST interface. Read-only: the platform owns
// all persistence and schema concerns.
type Client struct {
	http        *resty.Client
	rateLimiter *rate.Limiter
	logger      *zap.Logger

	catalogCache domain.CacheRepository
	catalogTTL   time.Duration
}

// Option configures optional client behavior
type Option func(*Client)

// WithCatalogCache serves catalog reads through the given cache with the
// given TTL. Recommendation calls stay stateless; caching lives here at the
// data-access boundary.
func WithCatalogCache(cache domain.CacheRepository, ttl time.Duration) Option {
	return func(c *Client) {
		c.catalogCache = cache
		c.catalogTTL = ttl
	}
}

// NewClient creates a client for the given project URL and service key
func NewClient(baseURL, apiKey string, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL+restPath).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	client := &Client{
		http:        httpClient,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ActiveItems returns the household's active on-hand items
func (c *Client) ActiveItems(ctx context.Context, householdID string) ([]domain.HouseholdItem, error) {
	var rows []householdItemRecord
	err := c.get(ctx, "/household_items", map[string]string{
		"select":       "*",
		"household_id": "eq." + householdID,
		"is_active":    "eq.true",
	}, &rows)
	if err != nil {
		return nil, err
	}

	items := make([]domain.HouseholdItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed household item",
				zap.String("item_id", row.ID), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Profile returns the preference profile of the household's owner
func (c *Client) Profile(ctx context.Context, householdID string) (*domain.UserProfile, error) {
	var rows []profileRecord
	err := c.get(ctx, "/profiles", map[string]string{
		"select":       "*",
		"household_id": "eq." + householdID,
		"limit":        "1",
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	profile := rows[0].toDomain()
	return &profile, nil
}

// Recipes returns the full recipe catalog, served through the configured
// cache when one is attached
func (c *Client) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	if recipes, ok := c.catalogFromCache(ctx); ok {
		return recipes, nil
	}

	var rows []recipeRecord
	if err := c.get(ctx, "/recipes", map[string]string{"select": "*"}, &rows); err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, row.toDomain())
	}

	c.cacheCatalog(ctx, recipes)
	return recipes, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrBackendFailure, path)
	}
	if resp.IsError() {
		c.logger.Warn("data platform error response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()))
		return fmt.Errorf("%w: status %d", domain.ErrBackendFailure, resp.StatusCode())
	}
	return nil
}

func (c *Client) catalogFromCache(ctx context.Context) ([]domain.Recipe, bool) {
	if c.catalogCache == nil {
		return nil, false
	}
	value, err := c.catalogCache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return nil, false
	}
	var recipes []domain.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		c.logger.Warn("dropping undecodable cached catalog", zap.Error(err))
		_ = c.catalogCache.Delete(ctx, catalogCacheKey)
		return nil, false
	}
	return recipes, true
}

func (c *Client) cacheCatalog(ctx context.Context, recipes []domain.Recipe) {
	if c.catalogCache == nil {
		return
	}
	raw, err := json.Marshal(recipes)
	if err != nil {
		return
	}
	if err := c.catalogCache.Set(ctx, catalogCacheKey, string(raw), c.catalogTTL); err != nil {
		c.logger.Warn("failed to cache recipe catalog", zap.Error(err))
	}
}
