package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fridgehero/backend/internal/domain"
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	MaxResults    int
	MinMatchScore float64
}

// RecommendationService drives the full recommendation flow: fetch the
// three collaborator reads, match and score every catalog recipe, filter,
// rank, and backfill with template recipes when results are sparse.
type RecommendationService struct {
	pantry   domain.PantryRepository
	profiles domain.ProfileRepository
	catalog  domain.RecipeCatalog
	matcher  *AvailabilityMatcher
	scorer   *ScoringEngine
	advisor  *SubstitutionAdvisor
	fallback *FallbackGenerator
	logger   *zap.Logger

	maxResults    int
	minMatchScore float64

	// now is swappable so tests can pin expiry math
	now func() time.Time
}

// NewRecommendationService creates the service with its dependencies.
// Tables are injected so tests can substitute smaller relationship tables.
func NewRecommendationService(
	pantry domain.PantryRepository,
	profiles domain.ProfileRepository,
	catalog domain.RecipeCatalog,
	tables *IngredientTables,
	logger *zap.Logger,
	config RecommendationServiceConfig,
) *RecommendationService {
	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = domain.DefaultMaxResults
	}
	minScore := config.MinMatchScore
	if minScore <= 0 {
		minScore = domain.DefaultMinMatchScore
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RecommendationService{
		pantry:        pantry,
		profiles:      profiles,
		catalog:       catalog,
		matcher:       NewAvailabilityMatcher(tables),
		scorer:        NewScoringEngine(),
		advisor:       NewSubstitutionAdvisor(tables),
		fallback:      NewFallbackGenerator(),
		logger:        logger,
		maxResults:    maxResults,
		minMatchScore: minScore,
		now:           time.Now,
	}
}

// Recommend returns the ranked recipe matches for a household.
// Any collaborator fetch failure aborts the whole call with no partial
// result; an empty list is a valid outcome of a sparse pantry.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	householdID string,
	opts domain.RecommendOptions,
) ([]*domain.MatchResult, error) {
	if householdID == "" {
		return nil, domain.ErrInvalidRequest
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}
	minScore := opts.MinMatchScore
	if minScore <= 0 {
		minScore = s.minMatchScore
	}

	items, profile, recipes, err := s.fetchInputs(ctx, householdID)
	if err != nil {
		return nil, err
	}

	if len(opts.DietaryRestrictions) > 0 {
		override := *profile
		override.DietaryRestrictions = opts.DietaryRestrictions
		profile = &override
	}

	now := s.now()
	var results []*domain.MatchResult
	for i := range recipes {
		recipe := &recipes[i]
		if len(recipe.Ingredients) == 0 {
			// Contract violation by the catalog; skip rather than abort the batch
			s.logger.Warn("skipping recipe with empty ingredient list",
				zap.String("recipe_id", recipe.ID),
				zap.String("recipe_name", recipe.Name))
			continue
		}
		if ContainsAllergen(recipe, profile.Allergies) {
			continue
		}

		result := s.buildResult(recipe, items, profile, now)
		if result.MatchScore < minScore {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return RankLess(results[i], results[j], opts.UrgencyFocus)
	})

	if s.fallback.NeedsFallback(results) {
		results = append(results, s.generateFallbacks(items, profile, now)...)
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// fetchInputs issues the three collaborator reads concurrently and joins
// them all-or-nothing
func (s *RecommendationService) fetchInputs(ctx context.Context, householdID string) ([]domain.HouseholdItem, *domain.UserProfile, []domain.Recipe, error) {
	var (
		items   []domain.HouseholdItem
		profile *domain.UserProfile
		recipes []domain.Recipe
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.pantry.ActiveItems(gctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.profiles.Profile(gctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = s.catalog.Recipes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return items, profile, recipes, nil
}

func (s *RecommendationService) buildResult(
	recipe *domain.Recipe,
	pantry []domain.HouseholdItem,
	profile *domain.UserProfile,
	now time.Time,
) *domain.MatchResult {
	outcome := s.matcher.Match(recipe.Ingredients, pantry)
	scores := s.scorer.Score(recipe, outcome, profile, now)

	available := make([]domain.IngredientEntry, 0, len(outcome.Available))
	for _, avail := range outcome.Available {
		available = append(available, avail.Entry)
	}

	return &domain.MatchResult{
		Recipe:               recipe,
		MatchScore:           scores.Match,
		AvailabilityScore:    scores.Availability,
		UrgencyScore:         scores.Urgency,
		CreativityScore:      scores.Creativity,
		PersonalizedScore:    scores.Personalization,
		AvailableIngredients: available,
		MissingIngredients:   outcome.Missing,
		Substitutions:        s.advisor.Suggest(outcome.Missing, pantry),
		WasteReductionImpact: wasteReductionImpact(outcome, now),
		EstimatedCost:        estimatedCostPlaceholder,
		ReasonsToMake:        reasonsToMake(recipe, outcome, scores, now),
	}
}

// generateFallbacks builds and scores the template recipes. Best effort:
// a pantry missing the template base categories yields nothing.
func (s *RecommendationService) generateFallbacks(
	pantry []domain.HouseholdItem,
	profile *domain.UserProfile,
	now time.Time,
) []*domain.MatchResult {
	recipes := s.fallback.Generate(pantry)
	results := make([]*domain.MatchResult, 0, len(recipes))
	for i := range recipes {
		if ContainsAllergen(&recipes[i], profile.Allergies) {
			continue
		}
		results = append(results, s.buildResult(&recipes[i], pantry, profile, now))
	}
	return results
}
