package ml

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Scorer turns a feature vector into the positive-class probability. The
// wrapped classifier is never mutated, so one Scorer is shared by all requests.
type Scorer struct {
	model Classifier
	cache *lru.Cache[[NumFeatures]float64, float64]
}

// NewScorer wraps model. A positive cacheSize memoizes scores per vector.
func NewScorer(model Classifier, cacheSize int) (*Scorer, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil classifier", ErrInvalidModel)
	}
	s := &Scorer{model: model}
	if cacheSize > 0 {
		cache, err := lru.New[[NumFeatures]float64, float64](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create score cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

func (s *Scorer) Score(ctx context.Context, fv FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.cache != nil {
		if score, ok := s.cache.Get(fv.key()); ok {
			return score, nil
		}
	}
	proba, err := s.model.PredictProba(fv.Slice())
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(proba) != 2 {
		return 0, fmt.Errorf("%w: expected 2 class probabilities, got %d", ErrInvalidModel, len(proba))
	}
	score := proba[1]
	if s.cache != nil {
		s.cache.Add(fv.key(), score)
	}
	return score, nil
}
