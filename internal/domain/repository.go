package domain

import (
	"context"
	"time"
)

// PantryRepository reads a household's active on-hand items
type PantryRepository interface {
	ActiveItems(ctx context.Context, householdID string) ([]HouseholdItem, error)
}

// ProfileRepository reads the preference profile of a household's owner
type ProfileRepository interface {
	Profile(ctx context.Context, householdID string) (*UserProfile, error)
}

// RecipeCatalog reads the full recipe catalog
type RecipeCatalog interface {
	Recipes(ctx context.Context) ([]Recipe, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
