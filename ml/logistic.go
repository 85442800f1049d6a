package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// LogisticRegression mirrors the fitted attributes of a binary logistic
// regression: one coefficient row and one intercept.
type LogisticRegression struct {
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

func (lr *LogisticRegression) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var model LogisticRegression
	if err := json.Unmarshal(payload, &model); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := model.validate(); err != nil {
		return err
	}
	*lr = model
	return nil
}

func (lr *LogisticRegression) validate() error {
	// index 1 of PredictProba must be the positive class
	if len(lr.Classes) != 0 && (len(lr.Classes) != 2 || lr.Classes[0] != 0 || lr.Classes[1] != 1) {
		return fmt.Errorf("%w: expected classes [0 1], got %v", ErrInvalidModel, lr.Classes)
	}
	if len(lr.Coef) != 1 || len(lr.Coef[0]) == 0 {
		return fmt.Errorf("%w: expected a single coefficient row", ErrInvalidModel)
	}
	if len(lr.Intercept) != 1 {
		return fmt.Errorf("%w: expected a single intercept", ErrInvalidModel)
	}
	return nil
}

func (lr *LogisticRegression) NumFeatures() int {
	if len(lr.Coef) == 0 {
		return 0
	}
	return len(lr.Coef[0])
}

func (lr *LogisticRegression) PredictProba(features []float64) ([]float64, error) {
	if len(lr.Coef) == 0 {
		return nil, fmt.Errorf("%w: model not loaded", ErrInvalidModel)
	}
	weights := lr.Coef[0]
	if len(features) != len(weights) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), len(weights))
	}
	z := lr.Intercept[0]
	for i, w := range weights {
		z += w * features[i]
	}
	p1 := sigmoid(z)
	return []float64{1 - p1, p1}, nil
}
