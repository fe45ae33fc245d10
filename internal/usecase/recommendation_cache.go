package usecase

import (
	"context"
	"time"
)

// RecommendationCache is the read-through cache port. The Redis adapter in
// infrastructure/cache fails open: a miss and an unavailable cache look the
// same to the pipeline.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
