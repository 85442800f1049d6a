package ml

import (
	"fmt"
)

const (
	ModelTypeLogisticRegression = "logistic_regression"
	ModelTypeDecisionTree       = "decision_tree"
)

// LoadModel reads the artifact at path once and returns a classifier that
// accepts exactly NumFeatures inputs.
func LoadModel(modelType, path string) (Classifier, error) {
	var model interface {
		Classifier
		Load(path string) error
	}
	switch modelType {
	case ModelTypeLogisticRegression:
		model = &LogisticRegression{}
	case ModelTypeDecisionTree:
		model = &DecisionTree{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, modelType)
	}
	if err := model.Load(path); err != nil {
		return nil, fmt.Errorf("load %s model from %s: %w", modelType, path, err)
	}
	if model.NumFeatures() != NumFeatures {
		return nil, fmt.Errorf("%w: model expects %d features, service provides %d",
			ErrFeatureCount, model.NumFeatures(), NumFeatures)
	}
	return model, nil
}
