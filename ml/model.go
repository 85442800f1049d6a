package ml

import (
	"errors"
	"math"
)

var (
	ErrUnsupportedModel = errors.New("unsupported model type")
	ErrInvalidModel     = errors.New("invalid model artifact")
	ErrFeatureCount     = errors.New("feature count mismatch")
)

// Classifier is a pre-trained binary classifier. PredictProba returns the
// distribution [p0, p1] over the two classes.
type Classifier interface {
	PredictProba(features []float64) ([]float64, error)
	NumFeatures() int
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
