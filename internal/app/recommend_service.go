package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"moodtunes/internal/catalog"
	"moodtunes/internal/model"
)

// resultLimit caps one recommendation response; the catalog's relevance order
// within that window is the recommendation order.
const resultLimit = 5

// CatalogSearcher executes a free-text track search against the catalog
// service.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]catalog.RawTrack, error)
}

// RecommendationCache stores normalized tracks per query string.
type RecommendationCache interface {
	Get(ctx context.Context, query string) ([]model.Track, bool, error)
	Set(ctx context.Context, query string, tracks []model.Track) error
}

// RecommendInput is the caller's context for one recommendation. Language
// and Artist default inside the query builder.
type RecommendInput struct {
	Emotion  string
	Language string
	Artist   string
}

// RecommendService turns an emotion label plus preferences into normalized
// track recommendations.
type RecommendService struct {
	catalog CatalogSearcher
	cache   RecommendationCache
}

// NewRecommendService builds the recommend orchestrator. A nil cache disables
// caching; a cache failure degrades to a live search, never to an error.
func NewRecommendService(searcher CatalogSearcher, cache RecommendationCache) *RecommendService {
	return &RecommendService{catalog: searcher, cache: cache}
}

// Recommend validates input, builds the search query, and normalizes whatever
// the catalog returns. Missing emotion fails before the catalog is touched.
func (s *RecommendService) Recommend(ctx context.Context, in RecommendInput) ([]model.Track, error) {
	emotion := strings.TrimSpace(in.Emotion)
	if emotion == "" {
		return nil, fmt.Errorf("%w: emotion is required", ErrBadInput)
	}

	query := catalog.BuildQuery(emotion, strings.TrimSpace(in.Language), strings.TrimSpace(in.Artist))

	if s.cache != nil {
		tracks, ok, err := s.cache.Get(ctx, query)
		if err != nil {
			log.Printf("recommendation cache get failed: %v", err)
		} else if ok {
			return tracks, nil
		}
	}

	records, err := s.catalog.Search(ctx, query, resultLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	tracks := catalog.Normalize(records)

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, tracks); err != nil {
			log.Printf("recommendation cache set failed: %v", err)
		}
	}
	return tracks, nil
}
